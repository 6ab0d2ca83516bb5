package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"vehicles": h.finder.Len(),
	})
}
