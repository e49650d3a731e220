package db

import (
	"context"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/easeboard/easeboard/pkg/vault"
)

// CipherKey is the gorm context key carrying the token vault cipher.
// Model hooks pull it out to encrypt and decrypt Canvas tokens in place.
const CipherKey = "cipher"

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
	// Cipher is optional - if provided, it will be added to the context
	Cipher vault.Cipher
}

// Connect establishes a database connection.
// If no URL is provided, it reads from DATABASE_URL environment variable.
func Connect(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Default to silent logging unless EASEBOARD_LOG_LEVEL=debug is set
	logMode := logger.Silent
	if os.Getenv("EASEBOARD_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}

	database, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Cipher != nil {
		ctx := context.WithValue(context.Background(), CipherKey, cfg.Cipher)
		database = database.WithContext(ctx)
	}

	return database, nil
}

// URL returns the database URL from environment.
// Returns empty string if DATABASE_URL is not set.
func URL() string {
	return os.Getenv("DATABASE_URL")
}
