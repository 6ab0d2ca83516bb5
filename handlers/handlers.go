package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/carfinder/cache"
	"github.com/parts-pile/carfinder/ui"
	"github.com/parts-pile/carfinder/vehicle"
)

// Finder is the query surface the handlers need. Both *vehicle.Finder and
// *vehicle.CachedFinder implement it.
type Finder interface {
	Len() int
	Years() []int
	Manufacturers(year int) ([]string, error)
	Models(year int, manufacturer string) ([]string, error)
	Resolve(year int, manufacturer, model string) (vehicle.Record, error)
}

// Handler serves the finder page, its htmx fragments and the JSON API.
// Everything a request needs is carried on the Handler or parsed from the
// request; there is no package-level state.
type Handler struct {
	finder Finder
	cache  *cache.Cache[[]string]
	assets ui.Assets
}

// Option configures a Handler.
type Option func(*Handler)

// WithCache exposes c on the admin cache endpoints.
func WithCache(c *cache.Cache[[]string]) Option {
	return func(h *Handler) {
		h.cache = c
	}
}

// WithAssets sets the script and stylesheet URLs used by rendered pages.
func WithAssets(assets ui.Assets) Option {
	return func(h *Handler) {
		h.assets = assets
	}
}

func New(finder Finder, opts ...Option) *Handler {
	h := &Handler{finder: finder}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers every route on r.
func (h *Handler) Routes(r fiber.Router) {
	// Main page
	r.Get("/", h.HandleHome)

	// htmx fragments for the dependent widgets
	r.Get("/ui/manufacturers", h.HandleManufacturerSelect)
	r.Get("/ui/models", h.HandleModelSelect)
	r.Get("/ui/vehicle", h.HandleVehicleDetails)

	// API group
	api := r.Group("/api")
	api.Get("/years", h.HandleYears)
	api.Get("/manufacturers", h.HandleManufacturers)
	api.Get("/models", h.HandleModels)
	api.Get("/vehicle", h.HandleVehicle)

	// Cache admin
	admin := r.Group("/admin")
	admin.Get("/cache", h.HandleCacheStats)
	admin.Post("/cache/clear", h.HandleClearCache)

	// Health check
	r.Get("/health", h.HandleHealth)
}
