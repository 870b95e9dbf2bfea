package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL database
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize tables
	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables() error {
	queries := []string{
		// Preferences table: one row per device, overwritten wholesale on
		// every submit. No partial updates, no history.
		`CREATE TABLE IF NOT EXISTS preferences (
			device_id UUID PRIMARY KEY,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			language VARCHAR(50) NOT NULL,
			country VARCHAR(100) NOT NULL,
			struggles TEXT[] NOT NULL,
			gender VARCHAR(20),
			session_type VARCHAR(20),
			approach VARCHAR(100)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_preferences_updated_at ON preferences(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_preferences_language ON preferences(language)`,
		`CREATE INDEX IF NOT EXISTS idx_preferences_country ON preferences(country)`,
	}

	for _, query := range queries {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
