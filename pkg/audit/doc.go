// Package audit provides audit logging for EaseBoard operations.
//
// This package implements structured audit logging for security-relevant
// operations such as session authentication, Canvas token validation,
// connection changes and sync runs.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Session authentication events (success/failure)
//   - Canvas token validation events
//   - Connection create and delete events
//   - Sync run events
//
// # Usage
//
//	audit.Log(audit.SyncEvent{
//	    UserID:       userID.String(),
//	    ConnectionID: connectionID.String(),
//	    SyncType:     "manual",
//	    ItemsSynced:  42,
//	    Success:      true,
//	})
//
// Events are written to stdout in RFC5424 syslog format and, when
// AUDIT_DATABASE_URL is set, persisted to the audit_messages table.
// Plaintext API tokens never appear in audit output.
package audit
