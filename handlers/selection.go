package handlers

import (
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
)

// level is how far down the year -> manufacturer -> model cascade a
// request must reach.
type level int

const (
	levelYear level = iota + 1
	levelManufacturer
	levelModel
)

var yearPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Selection is the user's current choice, parsed from the query string.
type Selection struct {
	Year         int
	Manufacturer string
	Model        string
}

type selectionParams struct {
	Year         string `json:"year"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

func (p *selectionParams) validate(depth level) error {
	rules := []*validation.FieldRules{
		validation.Field(&p.Year, validation.Required, validation.Match(yearPattern).Error("must be an integer")),
	}
	if depth >= levelManufacturer {
		rules = append(rules, validation.Field(&p.Manufacturer, validation.Required))
	}
	if depth >= levelModel {
		rules = append(rules, validation.Field(&p.Model, validation.Required))
	}
	return validation.ValidateStruct(p, rules...)
}

// parseSelection reads year, manufacturer and model from the query string
// and checks that every parameter up to depth is present. Values are taken
// as-is: no trimming, no case folding.
func parseSelection(c *fiber.Ctx, depth level) (Selection, error) {
	p := selectionParams{
		Year:         c.Query("year"),
		Manufacturer: c.Query("manufacturer"),
		Model:        c.Query("model"),
	}
	if err := p.validate(depth); err != nil {
		return Selection{}, err
	}

	year, err := strconv.Atoi(p.Year)
	if err != nil {
		return Selection{}, validation.Errors{"year": err}
	}

	return Selection{
		Year:         year,
		Manufacturer: p.Manufacturer,
		Model:        p.Model,
	}, nil
}
