package server

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/parts-pile/carfinder/config"
	"github.com/parts-pile/carfinder/handlers"
)

// New builds the fiber app with middleware and every route of h.
func New(cfg config.ServerConfig, h *handlers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "carfinder",
		ErrorHandler:          h.HandleError,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	// Add rate limiter
	app.Use(handlers.RateLimiter(cfg.RateLimitMax, cfg.RateLimitExp))

	// Add logger middleware
	app.Use(logger.New())

	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	h.Routes(app)
	return app
}

// Run serves app on cfg's address until ctx is cancelled, then shuts down
// within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.ServerConfig, app *fiber.App) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] Starting server on %s", cfg.Address())
		errCh <- app.Listen(cfg.Address())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Printf("[server] Shutting down the server...")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
