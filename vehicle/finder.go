package vehicle

import (
	"slices"
)

// Finder answers the cascading year -> manufacturer -> model lookups over
// an immutable catalog. It is safe for concurrent use.
type Finder struct {
	records []Record
}

// NewFinder builds a Finder over a copy of records. A nil slice is rejected
// with an InvalidInput error; an empty slice is a valid, empty catalog.
func NewFinder(records []Record) (*Finder, error) {
	if records == nil {
		return nil, invalidInput("CarFinder expects an array of cars.")
	}
	return &Finder{records: slices.Clone(records)}, nil
}

// Len returns the number of records in the catalog.
func (f *Finder) Len() int {
	return len(f.records)
}

// Records returns a copy of the catalog in its original order.
func (f *Finder) Records() []Record {
	return slices.Clone(f.records)
}

// Years returns the distinct years in ascending numeric order.
func (f *Finder) Years() []int {
	seen := make(map[int]struct{}, len(f.records))
	years := []int{}
	for _, r := range f.records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	slices.Sort(years)
	return years
}

// Manufacturers returns the distinct manufacturers that have a record for
// year, in first-seen order.
func (f *Finder) Manufacturers(year int) ([]string, error) {
	makes := distinct(f.records, func(r Record) (string, bool) {
		return r.Manufacturer, r.Year == year
	})
	if len(makes) == 0 {
		return nil, notFound("No manufacturers found for year %d", year)
	}
	return makes, nil
}

// Models returns the distinct models for year and manufacturer, in
// first-seen order. Matching is exact and case-sensitive.
func (f *Finder) Models(year int, manufacturer string) ([]string, error) {
	models := distinct(f.records, func(r Record) (string, bool) {
		return r.Model, r.Year == year && r.Manufacturer == manufacturer
	})
	if len(models) == 0 {
		return nil, notFound("No models found for %s (%d)", manufacturer, year)
	}
	return models, nil
}

// Resolve returns the first record matching the full triple. Later records
// with the same triple are never returned.
func (f *Finder) Resolve(year int, manufacturer, model string) (Record, error) {
	for _, r := range f.records {
		if r.Year == year && r.Manufacturer == manufacturer && r.Model == model {
			return r, nil
		}
	}
	return Record{}, notFound("Car not found!")
}

// Find resolves the triple and projects the result.
func (f *Finder) Find(year int, manufacturer, model string) (Vehicle, error) {
	r, err := f.Resolve(year, manufacturer, model)
	if err != nil {
		return Vehicle{}, err
	}
	return Project(r), nil
}

func distinct(records []Record, pick func(Record) (string, bool)) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v, ok := pick(r)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
