package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/model"
)

// ErrConnectionNotFound is returned when a Canvas connection doesn't exist
var ErrConnectionNotFound = errors.New("canvas connection not found")

// ConnectionsStore abstracts Canvas connection storage operations
type ConnectionsStore interface {
	// UpsertConnection creates a connection, or replaces the token and
	// name of an existing connection to the same Canvas URL.
	UpsertConnection(userID uuid.UUID, canvasURL, canvasName, token string) (*model.CanvasConnection, error)

	// ListConnections returns all connections for a user, newest first.
	// Tokens are decrypted but must never leave the process.
	ListConnections(userID uuid.UUID) ([]model.CanvasConnection, error)

	// FetchConnection retrieves a single connection owned by the user.
	// Returns ErrConnectionNotFound if it doesn't exist.
	FetchConnection(userID, connectionID uuid.UUID) (*model.CanvasConnection, error)

	// DeleteConnection removes a connection and its cached data.
	DeleteConnection(userID, connectionID uuid.UUID) error

	// SetConnectionStatus updates the connection health status.
	SetConnectionStatus(connectionID uuid.UUID, status model.ConnectionStatus) error

	// ListStaleConnections returns connected connections whose last sync
	// is older than the cutoff, or that have never synced.
	ListStaleConnections(cutoff time.Time) ([]model.CanvasConnection, error)
}
