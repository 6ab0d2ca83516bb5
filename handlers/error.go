package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/carfinder/ui"
)

// HandleError is the fiber ErrorHandler. API routes get a JSON body,
// everything else an HTML error page.
func (h *Handler) HandleError(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[server] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}

	if strings.HasPrefix(ctx.Path(), "/api/") {
		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(h.assets, code, err.Error()))
}
