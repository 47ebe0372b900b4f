package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A :memory: database exists per connection; pin the pool to one
	// connection so every query sees the same database
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations under internal/database.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Service table
		CREATE TABLE service (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			summary TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0
		);

		-- Location table
		CREATE TABLE location (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			state VARCHAR(2) NOT NULL,
			summary TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0
		);

		-- Property type table
		CREATE TABLE property_type (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			summary TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0
		);

		-- Business profile table
		CREATE TABLE business_profile (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			role VARCHAR(100) NOT NULL,
			summary TEXT NOT NULL
		);

		-- Article table
		CREATE TABLE article (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			title VARCHAR(200) NOT NULL,
			summary TEXT NOT NULL,
			body TEXT NOT NULL,
			published_at TIMESTAMP NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
