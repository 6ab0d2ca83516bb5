package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
)

// Schema is the catalog table layout read by vehicle.LoadDB.
const Schema = `CREATE TABLE Vehicle (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	model TEXT NOT NULL,
	year INTEGER NOT NULL,
	price REAL NOT NULL,
	transmission TEXT NOT NULL,
	mileage INTEGER NOT NULL,
	fuel_type TEXT NOT NULL,
	tax REAL NOT NULL,
	mpg REAL NOT NULL,
	engine_size REAL NOT NULL,
	manufacturer TEXT NOT NULL
);
CREATE INDEX idx_vehicle_year_manufacturer ON Vehicle (year, manufacturer);`

// Create replaces any database at path with an empty catalog and returns a
// writable handle to it.
func Create(path string) (*sql.DB, error) {
	// Remove old DB if exists
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove old database %s: %w", path, err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := conn.Exec(Schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema in %s: %w", path, err)
	}

	log.Printf("Database created: %s", path)
	return conn, nil
}
