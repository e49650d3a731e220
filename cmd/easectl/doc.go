// Package main implements easectl, the EaseBoard server CLI.
//
// EaseBoard is a dashboard backend for students using the Canvas LMS. It
// stores encrypted Canvas API tokens, syncs courses, assignments and
// grades into a local Postgres cache, and serves them through a JSON
// API authenticated with Supabase session tokens.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Store interfaces and gorm implementations
//   - pkg/canvas: Canvas LMS REST client
//   - pkg/sync: Sync engine and background scheduler
//   - pkg/vault: Token encryption (AES-256-GCM)
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Generate a data key for token encryption
//	export EASEBOARD_DATA_KEY="$(easectl data-key generate)"
//
//	# Run database migrations
//	easectl db migrate
//
//	# Start the server
//	easectl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - EASEBOARD_DATA_KEY: Base64-encoded 256-bit key for token encryption
//   - SUPABASE_JWT_SECRET: Shared secret for verifying session tokens
//   - EASEBOARD_AUDIT_ENABLED: Enable audit logging ("true"/"false")
//   - EASEBOARD_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8080)
package main
