// Package store provides storage abstractions for the EaseBoard server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and the sync engine to be decoupled from the specific
// database implementation. This enables easier testing with mocks and
// potential support for different storage backends.
//
// # Available Stores
//
//   - ConnectionsStore: Canvas connection lifecycle and token storage
//   - CacheStore: cached courses, assignments and grades
//   - SyncLogsStore: sync run bookkeeping
//   - StatsStore: dashboard aggregation queries
//   - ProfilesStore: user profile reads and updates
//   - ScheduleStore: calendar events, study sessions, reminders, notifications
//   - HealthStore: connectivity checks
//
// # Usage
//
//	connections := gorm.NewConnectionsStore(db)
//	conn, err := connections.FetchConnection(userID, connectionID)
//	if err != nil {
//	    if errors.Is(err, store.ErrConnectionNotFound) {
//	        // Handle not found
//	    }
//	}
package store
