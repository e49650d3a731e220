package config

import (
	"fmt"
	"os"
)

// Secrets are only ever sourced from the environment.
const (
	DatabaseURLEnv = "DATABASE_URL"
	DataKeyEnv     = "EASEBOARD_DATA_KEY"
	JWTSecretEnv   = "SUPABASE_JWT_SECRET"
)

func requiredEnv(name string) (string, error) {
	val := os.Getenv(name)
	if val == "" {
		return "", fmt.Errorf("%s environment variable is required", name)
	}
	return val, nil
}

// DatabaseURL returns the Postgres connection string.
func DatabaseURL() (string, error) {
	return requiredEnv(DatabaseURLEnv)
}

// DataKey returns the base64-encoded AES data key used by the token vault.
func DataKey() (string, error) {
	return requiredEnv(DataKeyEnv)
}

// JWTSecret returns the shared secret used to verify Supabase session
// tokens.
func JWTSecret() (string, error) {
	return requiredEnv(JWTSecretEnv)
}
