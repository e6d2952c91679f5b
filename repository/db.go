// repository/db.go
package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

var db *sql.DB

// InitDB initializes the database connection
func InitDB() error {
	// Get database connection details from environment variables
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "postgres")
	dbname := getEnvOrDefault("DB_NAME", "artisanhub")

	// Create connection string
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// Connect to database
	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	// Test the connection
	err = db.Ping()
	if err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %v", err)
	}

	log.Println("Successfully connected to the database")
	return nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            phone TEXT,
            location TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,

		`CREATE TABLE IF NOT EXISTS categories (
            id TEXT PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT true
        )`,

		`CREATE TABLE IF NOT EXISTS artisans (
            id TEXT PRIMARY KEY,
            user_id TEXT UNIQUE NOT NULL REFERENCES users(id),
            category TEXT NOT NULL,
            experience TEXT NOT NULL,
            description TEXT NOT NULL,
            hourly_rate NUMERIC NOT NULL,
            location TEXT NOT NULL,
            portfolio TEXT[] NOT NULL DEFAULT '{}',
            certifications TEXT[] NOT NULL DEFAULT '{}',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,

		`CREATE TABLE IF NOT EXISTS payments (
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL REFERENCES users(id),
            artisan_id TEXT NOT NULL REFERENCES artisans(id),
            service TEXT NOT NULL,
            date TEXT NOT NULL,
            time TEXT NOT NULL,
            duration TEXT NOT NULL,
            location TEXT NOT NULL,
            hourly_rate NUMERIC NOT NULL,
            subtotal NUMERIC NOT NULL,
            platform_fee NUMERIC NOT NULL,
            tax NUMERIC NOT NULL,
            total NUMERIC NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            payment_status TEXT NOT NULL DEFAULT 'pending',
            payout_status TEXT NOT NULL DEFAULT 'pending',
            payment_method TEXT NOT NULL,
            transaction_id TEXT,
            rating NUMERIC,
            review TEXT,
            processed_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,

		`CREATE TABLE IF NOT EXISTS commission_settings (
            id INT PRIMARY KEY DEFAULT 1,
            default_rate NUMERIC NOT NULL,
            premium_artisans NUMERIC NOT NULL,
            new_artisans NUMERIC NOT NULL
        )`,

		`CREATE TABLE IF NOT EXISTS platform_settings (
            id INT PRIMARY KEY DEFAULT 1,
            platform_name TEXT NOT NULL,
            support_email TEXT NOT NULL,
            max_bookings_per_artisan INT NOT NULL,
            auto_approval_notes TEXT NOT NULL
        )`,

		`CREATE INDEX IF NOT EXISTS idx_payments_payment_status ON payments(payment_status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_payout_status ON payments(payout_status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_artisan_id ON payments(artisan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_artisans_status ON artisans(status)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %v", query, err)
		}
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	if db != nil {
		db.Close()
	}
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
