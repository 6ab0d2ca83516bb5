package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/carfinder/vehicle"
)

type vehicleResponse struct {
	Vehicle     vehicle.Vehicle `json:"vehicle"`
	Description string          `json:"description"`
}

func (h *Handler) HandleYears(c *fiber.Ctx) error {
	return c.JSON(h.finder.Years())
}

func (h *Handler) HandleManufacturers(c *fiber.Ctx) error {
	sel, err := parseSelection(c, levelYear)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	makes, err := h.finder.Manufacturers(sel.Year)
	if err != nil {
		return lookupError(err)
	}
	return c.JSON(makes)
}

func (h *Handler) HandleModels(c *fiber.Ctx) error {
	sel, err := parseSelection(c, levelManufacturer)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	models, err := h.finder.Models(sel.Year, sel.Manufacturer)
	if err != nil {
		return lookupError(err)
	}
	return c.JSON(models)
}

func (h *Handler) HandleVehicle(c *fiber.Ctx) error {
	sel, err := parseSelection(c, levelModel)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	record, err := h.finder.Resolve(sel.Year, sel.Manufacturer, sel.Model)
	if err != nil {
		return lookupError(err)
	}

	v := vehicle.Project(record)
	return c.JSON(vehicleResponse{
		Vehicle:     v,
		Description: vehicle.Describe(v),
	})
}

// lookupError maps finder errors onto HTTP errors.
func lookupError(err error) error {
	switch {
	case errors.Is(err, vehicle.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, vehicle.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
