package vehicle

import (
	"fmt"
	"log"
	"slices"

	"github.com/parts-pile/carfinder/cache"
)

// CachedFinder memoizes the list lookups of a Finder. The catalog never
// changes, so entries only leave the cache through TTL, eviction or Clear.
// Failed lookups are not cached.
type CachedFinder struct {
	finder *Finder
	cache  *cache.Cache[[]string]
	years  []int
}

// NewCachedFinder wraps f with c.
func NewCachedFinder(f *Finder, c *cache.Cache[[]string]) *CachedFinder {
	return &CachedFinder{
		finder: f,
		cache:  c,
		years:  f.Years(),
	}
}

// Len returns the number of records in the underlying catalog.
func (cf *CachedFinder) Len() int {
	return cf.finder.Len()
}

func (cf *CachedFinder) Years() []int {
	return slices.Clone(cf.years)
}

func (cf *CachedFinder) Manufacturers(year int) ([]string, error) {
	key := fmt.Sprintf("manufacturers:%d", year)
	return cf.lookup(key, func() ([]string, error) {
		return cf.finder.Manufacturers(year)
	})
}

func (cf *CachedFinder) Models(year int, manufacturer string) ([]string, error) {
	key := fmt.Sprintf("models:%d:%q", year, manufacturer)
	return cf.lookup(key, func() ([]string, error) {
		return cf.finder.Models(year, manufacturer)
	})
}

func (cf *CachedFinder) Resolve(year int, manufacturer, model string) (Record, error) {
	return cf.finder.Resolve(year, manufacturer, model)
}

func (cf *CachedFinder) lookup(key string, load func() ([]string, error)) ([]string, error) {
	if cached, found := cf.cache.Get(key); found {
		return slices.Clone(cached), nil
	}

	values, err := load()
	if err != nil {
		return nil, err
	}

	if !cf.cache.Set(key, slices.Clone(values), lookupCost(values)) {
		log.Printf("[vehicle-cache] Dropped set for %s", key)
	}
	return values, nil
}

func lookupCost(values []string) int64 {
	cost := int64(len(values) * 16)
	for _, v := range values {
		cost += int64(len(v))
	}
	return cost
}
