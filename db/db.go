package db

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// DSN builds a read-only sqlite3 data source name for path.
func DSN(path string) string {
	q := url.Values{}
	q.Set("mode", "ro")
	return "file:" + path + "?" + q.Encode()
}

// Open opens the SQLite catalog at path in read-only mode and checks the
// connection. The caller owns the returned handle.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// Test the connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	log.Printf("Database opened read-only: %s", path)
	return conn, nil
}
