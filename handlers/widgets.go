package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/parts-pile/carfinder/ui"
	"github.com/parts-pile/carfinder/vehicle"
)

func (h *Handler) HandleHome(c *fiber.Ctx) error {
	return render(c, ui.HomePage(h.assets, h.finder.Years()))
}

// HandleManufacturerSelect answers a year change: the manufacturer widget is
// repopulated and the model widget and details are reset. When nothing
// matches, the manufacturer widget stays disabled.
func (h *Handler) HandleManufacturerSelect(c *fiber.Ctx) error {
	var makes []string
	if sel, err := parseSelection(c, levelYear); err != nil {
		log.Printf("[finder] %v", err)
	} else if makes, err = h.finder.Manufacturers(sel.Year); err != nil {
		log.Printf("[finder] %v", err)
	}

	return render(c, g.Group([]g.Node{
		ui.ManufacturerSelect(makes),
		ui.ModelSelect(nil, true),
		ui.VehicleDetails(nil, true),
	}))
}

// HandleModelSelect answers a manufacturer change.
func (h *Handler) HandleModelSelect(c *fiber.Ctx) error {
	var models []string
	if sel, err := parseSelection(c, levelManufacturer); err != nil {
		log.Printf("[finder] %v", err)
	} else if models, err = h.finder.Models(sel.Year, sel.Manufacturer); err != nil {
		log.Printf("[finder] %v", err)
	}

	return render(c, g.Group([]g.Node{
		ui.ModelSelect(models, false),
		ui.VehicleDetails(nil, true),
	}))
}

// HandleVehicleDetails answers a model change with the selected vehicle's
// description.
func (h *Handler) HandleVehicleDetails(c *fiber.Ctx) error {
	sel, err := parseSelection(c, levelModel)
	if err != nil {
		log.Printf("[finder] %v", err)
		return render(c, ui.VehicleDetails(nil, false))
	}

	record, err := h.finder.Resolve(sel.Year, sel.Manufacturer, sel.Model)
	if err != nil {
		log.Printf("[finder] Error: %v", err)
		return render(c, ui.VehicleNotFound(err.Error()))
	}

	v := vehicle.Project(record)
	log.Printf("[finder] Selected Car Details: %s", v)
	return render(c, ui.VehicleDetails(&v, false))
}
