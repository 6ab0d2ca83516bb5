package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleCacheStats returns the lookup cache metrics.
func (h *Handler) HandleCacheStats(c *fiber.Ctx) error {
	if h.cache == nil {
		return fiber.NewError(fiber.StatusNotFound, "Cache not enabled")
	}
	return c.JSON(h.cache.Stats())
}

// HandleClearCache empties the lookup cache.
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	if h.cache == nil {
		return fiber.NewError(fiber.StatusNotFound, "Cache not enabled")
	}
	h.cache.Clear()
	log.Printf("[vehicle-cache] Cache cleared")
	return c.SendStatus(fiber.StatusNoContent)
}
