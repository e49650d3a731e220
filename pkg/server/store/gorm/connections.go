package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Ensure ConnectionsStore implements store.ConnectionsStore
var _ store.ConnectionsStore = (*ConnectionsStore)(nil)

// ConnectionsStore implements store.ConnectionsStore using GORM
type ConnectionsStore struct {
	db *gorm.DB
}

// NewConnectionsStore creates a new ConnectionsStore
func NewConnectionsStore(db *gorm.DB) *ConnectionsStore {
	return &ConnectionsStore{db: db}
}

// UpsertConnection creates a connection, or replaces the token and name
// of an existing connection to the same Canvas URL. Encryption happens in
// the model's BeforeSave hook.
func (s *ConnectionsStore) UpsertConnection(userID uuid.UUID, canvasURL, canvasName, token string) (*model.CanvasConnection, error) {
	var existing model.CanvasConnection
	tx := s.db.Where("user_id = ? AND canvas_url = ?", userID, canvasURL).First(&existing)
	if tx.Error != nil && tx.Error != gorm.ErrRecordNotFound {
		return nil, tx.Error
	}

	if tx.Error == nil {
		existing.CanvasName = canvasName
		existing.Token = token
		existing.Status = model.ConnectionStatusConnected
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	connection := model.CanvasConnection{
		UserID:     userID,
		CanvasURL:  canvasURL,
		CanvasName: canvasName,
		Token:      token,
		Status:     model.ConnectionStatusConnected,
	}
	if err := s.db.Create(&connection).Error; err != nil {
		return nil, err
	}
	return &connection, nil
}

// ListConnections returns all connections for a user, newest first.
func (s *ConnectionsStore) ListConnections(userID uuid.UUID) ([]model.CanvasConnection, error) {
	var connections []model.CanvasConnection
	tx := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&connections)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return connections, nil
}

// FetchConnection retrieves a single connection owned by the user.
func (s *ConnectionsStore) FetchConnection(userID, connectionID uuid.UUID) (*model.CanvasConnection, error) {
	var connection model.CanvasConnection
	tx := s.db.Where("id = ? AND user_id = ?", connectionID, userID).First(&connection)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrConnectionNotFound
		}
		return nil, tx.Error
	}
	return &connection, nil
}

// DeleteConnection removes a connection and its cached data.
func (s *ConnectionsStore) DeleteConnection(userID, connectionID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var connection model.CanvasConnection
		result := tx.Session(&gorm.Session{SkipHooks: true}).
			Where("id = ? AND user_id = ?", connectionID, userID).First(&connection)
		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				return store.ErrConnectionNotFound
			}
			return result.Error
		}

		// Cached rows hang off courses, clear them bottom-up
		if err := tx.Exec(`
			DELETE FROM assignments WHERE course_id IN
				(SELECT id FROM courses WHERE canvas_connection_id = ?)
		`, connectionID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			DELETE FROM grades WHERE course_id IN
				(SELECT id FROM courses WHERE canvas_connection_id = ?)
		`, connectionID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM courses WHERE canvas_connection_id = ?`, connectionID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM sync_logs WHERE canvas_connection_id = ?`, connectionID).Error; err != nil {
			return err
		}

		return tx.Exec(`DELETE FROM canvas_connections WHERE id = ?`, connectionID).Error
	})
}

// SetConnectionStatus updates the connection health status.
func (s *ConnectionsStore) SetConnectionStatus(connectionID uuid.UUID, status model.ConnectionStatus) error {
	return s.db.Model(&model.CanvasConnection{}).
		Where("id = ?", connectionID).
		Update("status", status).Error
}

// ListStaleConnections returns connected connections whose last sync is
// older than the cutoff, or that have never synced.
func (s *ConnectionsStore) ListStaleConnections(cutoff time.Time) ([]model.CanvasConnection, error) {
	var connections []model.CanvasConnection
	tx := s.db.
		Where("status = ?", model.ConnectionStatusConnected).
		Where("last_sync IS NULL OR last_sync < ?", cutoff).
		Find(&connections)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return connections, nil
}
