package cli

import (
	"fmt"

	"github.com/parts-pile/carfinder/config"
	"github.com/parts-pile/carfinder/db"
	"github.com/parts-pile/carfinder/vehicle"
)

// loadRecords reads the catalog from the configured source.
func loadRecords(cfg config.CatalogConfig) ([]vehicle.Record, error) {
	switch cfg.Driver {
	case config.DriverFile:
		return vehicle.LoadFile(cfg.Path)
	case config.DriverSQLite:
		conn, err := db.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
		return vehicle.LoadDB(conn)
	case config.DriverEmbedded:
		return vehicle.DefaultRecords(), nil
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}
}

func buildFinder(cfg config.CatalogConfig) (*vehicle.Finder, error) {
	records, err := loadRecords(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return vehicle.NewFinder(records)
}
