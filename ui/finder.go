package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/carfinder/vehicle"
)

// Element IDs of the three dependent widgets and the details area.
const (
	YearSelectID         = "yearSelect"
	ManufacturerSelectID = "manufacturerSelect"
	ModelSelectID        = "modelSelect"
	DetailsID            = "vehicleDetails"
)

func HomePage(assets Assets, years []int) g.Node {
	return Page(
		assets,
		"Car Finder",
		[]g.Node{
			pageHeader("Car Finder"),
			contentContainer(
				Form(
					ID("finderForm"),
					Class("space-y-6"),
					FormGroup("Year", YearSelectID, YearSelect(years)),
					FormGroup("Make", ManufacturerSelectID, ManufacturerSelect(nil)),
					FormGroup("Model", ModelSelectID, ModelSelect(nil, false)),
				),
				VehicleDetails(nil, false),
				actionButtons(buttonSecondary("Start over", withHref("/"))),
			),
		},
	)
}

func YearSelect(years []int) g.Node {
	values := make([]string, 0, len(years))
	for _, year := range years {
		values = append(values, strconv.Itoa(year))
	}
	return SelectInput(YearSelectID, "year", "Vehicle Year", values,
		hx.Trigger("change"),
		hx.Get("/ui/manufacturers"),
		hx.Target("#"+ManufacturerSelectID),
		hx.Swap("outerHTML"),
	)
}

func ManufacturerSelect(makes []string) g.Node {
	return SelectInput(ManufacturerSelectID, "manufacturer", "Vehicle Make", makes,
		hx.Trigger("change"),
		hx.Get("/ui/models"),
		hx.Target("#"+ModelSelectID),
		hx.Swap("outerHTML"),
		hx.Include("#"+YearSelectID),
	)
}

// ModelSelect renders the model widget. With oob set it is marked for an
// out-of-band swap so it can ride along with another widget's response.
func ModelSelect(models []string, oob bool) g.Node {
	return SelectInput(ModelSelectID, "model", "Vehicle Model", models,
		hx.Trigger("change"),
		hx.Get("/ui/vehicle"),
		hx.Target("#"+DetailsID),
		hx.Swap("outerHTML"),
		hx.Include("#"+YearSelectID+",#"+ManufacturerSelectID),
		g.If(oob, hx.SwapOOB("true")),
	)
}

// VehicleDetails renders the description and detail table for v, or an
// empty details area when v is nil.
func VehicleDetails(v *vehicle.Vehicle, oob bool) g.Node {
	if v == nil {
		return Div(ID(DetailsID), Class("mt-8"), g.If(oob, hx.SwapOOB("true")))
	}

	d := v.Details
	return Div(
		ID(DetailsID),
		Class("mt-8 p-4 bg-gray-50 border border-gray-200 rounded-lg"),
		g.If(oob, hx.SwapOOB("true")),
		P(Class("text-lg font-semibold mb-4"), g.Text(vehicle.Describe(*v))),
		Table(
			Class("w-full text-sm"),
			detailRow("Price", "$"+vehicle.FormatNumber(d.Price)),
			detailRow("Transmission", d.Transmission),
			detailRow("Mileage", strconv.Itoa(d.Mileage)),
			detailRow("Fuel Type", d.FuelType),
			detailRow("Tax", "$"+vehicle.FormatNumber(d.Tax)),
			detailRow("MPG", vehicle.FormatNumber(d.MPG)),
			detailRow("Engine Size", vehicle.FormatNumber(d.EngineSize)),
		),
	)
}

// VehicleNotFound renders the details area with an empty-state message.
func VehicleNotFound(message string) g.Node {
	return Div(
		ID(DetailsID),
		Class("mt-8"),
		NoResultsMessage(message),
	)
}

func detailRow(label, value string) g.Node {
	return Tr(
		Th(Class("text-left font-medium text-gray-600 py-1 pr-4"), g.Text(label)),
		Td(Class("py-1"), g.Text(value)),
	)
}
