// Package server provides the HTTP server for the EaseBoard API.
//
// This package implements the core HTTP server that handles all EaseBoard
// REST API requests. It uses gorilla/mux for routing and provides
// middleware for session authentication.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, sessionAuth, host, port)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection with the token cipher attached
//   - SessionAuth: Supabase session token validation
//   - Stores: connection, cache, sync log, stats, profile, schedule and
//     health storage
//   - Syncer: the Canvas sync engine
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all standard EaseBoard API endpoints including:
//
//   - /api/canvas/setup - Connect a Canvas instance
//   - /api/canvas/validate-token - Validate an API token
//   - /api/canvas/connections - List and remove connections
//   - /api/canvas/sync - Trigger and inspect sync runs
//   - /api/dashboard/stats - Dashboard summary counters
//   - /api/users/profile - Profile management
//   - /api/schedule - Calendar events, study sessions, reminders, notifications
package server
