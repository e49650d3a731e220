package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/model"
)

// ErrSyncLogNotFound is returned when a sync log doesn't exist
var ErrSyncLogNotFound = errors.New("sync log not found")

// SyncLogsStore abstracts sync log storage operations
type SyncLogsStore interface {
	// CreateSyncLog opens a new log in the syncing state.
	CreateSyncLog(userID, connectionID uuid.UUID, syncType string) (*model.SyncLog, error)

	// CompleteSyncLog closes a log as completed with the item count.
	CompleteSyncLog(id uuid.UUID, itemsSynced int) error

	// FailSyncLog closes a log as failed with the error message.
	FailSyncLog(id uuid.UUID, message string) error

	// FetchSyncLog retrieves a single log owned by the user.
	FetchSyncLog(userID, id uuid.UUID) (*model.SyncLog, error)

	// ListRecentSyncLogs returns the user's latest logs, newest first.
	ListRecentSyncLogs(userID uuid.UUID, limit int) ([]model.SyncLog, error)
}
