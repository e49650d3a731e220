// Package config provides configuration management for EaseBoard.
//
// Settings are layered: built-in defaults, then the optional YAML file at
// EASEBOARD_CONFIG_PATH (default /etc/easeboard/config/easeboard.yml), then
// EASEBOARD_* environment variables. Each attribute remembers its source so
// operators can see where a value came from.
//
// Secrets are never read from the config file:
//
//   - DATABASE_URL: Database connection
//   - EASEBOARD_DATA_KEY: Token encryption key
//   - SUPABASE_JWT_SECRET: Session token verification secret
//
// Watch reloads the settings when the config file changes on disk.
package config
