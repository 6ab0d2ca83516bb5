package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

// createTestContext creates a Fiber context for uri
func createTestContext(t *testing.T, uri string) *fiber.Ctx {
	t.Helper()
	app := fiber.New()

	fctx := &fasthttp.RequestCtx{}
	fctx.Request.SetRequestURI(uri)

	ctx := app.AcquireCtx(fctx)
	t.Cleanup(func() { app.ReleaseCtx(ctx) })
	return ctx
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		depth       level
		expected    Selection
		expectError string
	}{
		{
			name:     "year only",
			uri:      "/api/manufacturers?year=2019",
			depth:    levelYear,
			expected: Selection{Year: 2019},
		},
		{
			name:     "full selection",
			uri:      "/api/vehicle?year=2017&manufacturer=Mercedes&model=A+Class",
			depth:    levelModel,
			expected: Selection{Year: 2017, Manufacturer: "Mercedes", Model: "A Class"},
		},
		{
			name:     "values are not trimmed",
			uri:      "/api/models?year=2019&manufacturer=%20toyota",
			depth:    levelManufacturer,
			expected: Selection{Year: 2019, Manufacturer: " toyota"},
		},
		{
			name:     "negative year is well formed",
			uri:      "/api/manufacturers?year=-1",
			depth:    levelYear,
			expected: Selection{Year: -1},
		},
		{
			name:     "extra parameters ignored at shallow depth",
			uri:      "/api/manufacturers?year=2019&model=Golf",
			depth:    levelYear,
			expected: Selection{Year: 2019, Model: "Golf"},
		},
		{
			name:        "missing year",
			uri:         "/api/manufacturers",
			depth:       levelYear,
			expectError: "year: cannot be blank",
		},
		{
			name:        "non numeric year",
			uri:         "/api/manufacturers?year=20l9",
			depth:       levelYear,
			expectError: "year: must be an integer",
		},
		{
			name:        "year overflows int",
			uri:         "/api/manufacturers?year=99999999999999999999",
			depth:       levelYear,
			expectError: "year",
		},
		{
			name:        "missing manufacturer",
			uri:         "/api/models?year=2019",
			depth:       levelManufacturer,
			expectError: "manufacturer: cannot be blank",
		},
		{
			name:        "missing model",
			uri:         "/api/vehicle?year=2019&manufacturer=toyota",
			depth:       levelModel,
			expectError: "model: cannot be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := parseSelection(createTestContext(t, tt.uri), tt.depth)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel)
		})
	}
}
