package vehicle

import (
	"bytes"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// DefaultRecords returns the built-in five vehicle catalog.
func DefaultRecords() []Record {
	records, err := ParseJSON(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is malformed: %v", err))
	}
	return records
}

// ParseJSON decodes a JSON catalog document. The top-level value must be
// an array; an object, a scalar, null or an empty document is rejected
// with an InvalidInput error.
func ParseJSON(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, invalidInput("catalog must be a JSON array of vehicles")
	}

	records := []Record{}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decode catalog JSON: %w", err)
	}
	return records, nil
}

// ParseYAML decodes a YAML catalog document whose root node must be a
// sequence.
func ParseYAML(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, invalidInput("catalog must be a YAML sequence of vehicles")
	}

	var records []Record
	if err := doc.Content[0].Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog YAML: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// LoadFile reads a catalog from a .json, .yaml or .yml file.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var records []Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		records, err = ParseJSON(data)
	case ".yaml", ".yml":
		records, err = ParseYAML(data)
	default:
		return nil, invalidInput("unsupported catalog file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[catalog] Loaded %d vehicles from %s", len(records), path)
	return records, nil
}

const selectVehicles = `SELECT model, year, price, transmission, mileage, fuel_type, tax, mpg, engine_size, manufacturer
	FROM Vehicle ORDER BY id`

// LoadDB reads the catalog from the Vehicle table. The connection is only
// read from.
func LoadDB(conn *sql.DB) ([]Record, error) {
	rows, err := conn.Query(selectVehicles)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.Model, &r.Year, &r.Price, &r.Transmission, &r.Mileage,
			&r.FuelType, &r.Tax, &r.MPG, &r.EngineSize, &r.Manufacturer,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicles: %w", err)
	}

	log.Printf("[catalog] Loaded %d vehicles from database", len(records))
	return records, nil
}

const insertVehicle = `INSERT INTO Vehicle
	(model, year, price, transmission, mileage, fuel_type, tax, mpg, engine_size, manufacturer)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SaveDB writes records to the Vehicle table in one transaction, keeping
// their order so LoadDB returns them as given.
func SaveDB(conn *sql.DB, records []Record) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertVehicle)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(
			r.Model, r.Year, r.Price, r.Transmission, r.Mileage,
			r.FuelType, r.Tax, r.MPG, r.EngineSize, r.Manufacturer,
		); err != nil {
			return fmt.Errorf("insert vehicle %d (%s %s): %w", i, r.Manufacturer, r.Model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	log.Printf("[catalog] Saved %d vehicles to database", len(records))
	return nil
}
