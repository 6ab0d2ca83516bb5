package vehicle

import (
	"fmt"
	"strconv"
)

// Record is a raw catalog entry.
type Record struct {
	Model        string  `json:"model" yaml:"model"`
	Year         int     `json:"year" yaml:"year"`
	Price        float64 `json:"price" yaml:"price"`
	Transmission string  `json:"transmission" yaml:"transmission"`
	Mileage      int     `json:"mileage" yaml:"mileage"`
	FuelType     string  `json:"fuelType" yaml:"fuelType"`
	Tax          float64 `json:"tax" yaml:"tax"`
	MPG          float64 `json:"mpg" yaml:"mpg"`
	EngineSize   float64 `json:"engineSize" yaml:"engineSize"`
	Manufacturer string  `json:"manufacturer" yaml:"manufacturer"`
}

// Details holds every record field that is not part of the
// year/make/model identity.
type Details struct {
	Price        float64 `json:"price"`
	Transmission string  `json:"transmission"`
	Mileage      int     `json:"mileage"`
	FuelType     string  `json:"fuelType"`
	Tax          float64 `json:"tax"`
	MPG          float64 `json:"mpg"`
	EngineSize   float64 `json:"engineSize"`
}

// Vehicle is the display shape of a Record.
type Vehicle struct {
	Model   string  `json:"model"`
	Year    int     `json:"year"`
	Make    string  `json:"make"`
	Details Details `json:"details"`
}

// Project converts a raw record into a Vehicle.
func Project(r Record) Vehicle {
	return Vehicle{
		Model: r.Model,
		Year:  r.Year,
		Make:  r.Manufacturer,
		Details: Details{
			Price:        r.Price,
			Transmission: r.Transmission,
			Mileage:      r.Mileage,
			FuelType:     r.FuelType,
			Tax:          r.Tax,
			MPG:          r.MPG,
			EngineSize:   r.EngineSize,
		},
	}
}

// Describe returns the one-line summary shown once a vehicle is selected,
// e.g. "2018 ford Fiesta - Petrol, Manual, $9891, 31639 miles".
func Describe(v Vehicle) string {
	return fmt.Sprintf("%d %s %s - %s, %s, $%s, %d miles",
		v.Year, v.Make, v.Model,
		v.Details.FuelType, v.Details.Transmission,
		FormatNumber(v.Details.Price), v.Details.Mileage)
}

func (v Vehicle) String() string {
	return Describe(v)
}

// FormatNumber prints n in its shortest decimal form: 9891, 65.7, 1.5.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
