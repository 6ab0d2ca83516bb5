package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/parts-pile/carfinder/vehicle"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

var testAssets = Assets{HTMXURL: "/htmx.js", TailwindCSSURL: "/tailwind.css"}

func TestHomePage(t *testing.T) {
	html := renderString(t, HomePage(testAssets, []int{2016, 2019}))

	assert.Contains(t, html, `<title>Car Finder</title>`)
	assert.Contains(t, html, `src="/htmx.js"`)
	assert.Contains(t, html, `href="/tailwind.css"`)
	assert.Contains(t, html, `id="yearSelect"`)
	assert.Contains(t, html, `<option value="2016">2016</option>`)
	assert.Contains(t, html, `<option value="2019">2019</option>`)
	assert.Contains(t, html, `hx-get="/ui/manufacturers"`)
	assert.Contains(t, html, `id="vehicleDetails"`)
	assert.Contains(t, html, `<a href="/" class="px-4 py-2 rounded inline-block text-blue-500 hover:underline">Start over</a>`)
}

func TestSelectInputDisabledWhenEmpty(t *testing.T) {
	html := renderString(t, ManufacturerSelect(nil))

	assert.Contains(t, html, `id="manufacturerSelect"`)
	assert.Contains(t, html, `disabled`)
	assert.Contains(t, html, `<option value="">Vehicle Make</option>`)
	assert.Equal(t, 1, strings.Count(html, "<option"))
}

func TestSelectInputEnabled(t *testing.T) {
	html := renderString(t, ManufacturerSelect([]string{"volkswagen", "toyota"}))

	assert.NotContains(t, html, `disabled`)
	assert.Contains(t, html, `<option value="volkswagen">volkswagen</option>`)
	assert.Contains(t, html, `<option value="toyota">toyota</option>`)
	assert.Contains(t, html, `hx-include="#yearSelect"`)
	assert.Less(t, strings.Index(html, "volkswagen"), strings.Index(html, "toyota"))
}

func TestModelSelectOutOfBand(t *testing.T) {
	assert.NotContains(t, renderString(t, ModelSelect([]string{"C-HR"}, false)), `hx-swap-oob`)
	assert.Contains(t, renderString(t, ModelSelect(nil, true)), `hx-swap-oob="true"`)
}

func TestVehicleDetails(t *testing.T) {
	v := vehicle.Project(vehicle.DefaultRecords()[0])
	html := renderString(t, VehicleDetails(&v, false))

	assert.Contains(t, html, "2018 ford Fiesta - Petrol, Manual, $9891, 31639 miles")
	assert.Contains(t, html, "<td class=\"py-1\">65.7</td>")
	assert.Contains(t, html, "Engine Size")

	empty := renderString(t, VehicleDetails(nil, true))
	assert.Contains(t, empty, `id="vehicleDetails"`)
	assert.Contains(t, empty, `hx-swap-oob="true"`)
	assert.NotContains(t, empty, "<table")
}

func TestVehicleNotFound(t *testing.T) {
	html := renderString(t, VehicleNotFound("Car not found!"))
	assert.Contains(t, html, `id="vehicleDetails"`)
	assert.Contains(t, html, "Car not found!")
}

func TestErrorPage(t *testing.T) {
	html := renderString(t, ErrorPage(testAssets, 404, "Cannot GET /nope"))
	assert.Contains(t, html, "Error 404")
	assert.Contains(t, html, "Cannot GET /nope")
	assert.Contains(t, html, `href="/"`)
	assert.Contains(t, html, "Back to Car Finder")
}
