package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Ensure SyncLogsStore implements store.SyncLogsStore
var _ store.SyncLogsStore = (*SyncLogsStore)(nil)

// SyncLogsStore implements store.SyncLogsStore using GORM
type SyncLogsStore struct {
	db *gorm.DB
}

// NewSyncLogsStore creates a new SyncLogsStore
func NewSyncLogsStore(db *gorm.DB) *SyncLogsStore {
	return &SyncLogsStore{db: db}
}

// CreateSyncLog opens a new log in the syncing state.
func (s *SyncLogsStore) CreateSyncLog(userID, connectionID uuid.UUID, syncType string) (*model.SyncLog, error) {
	log := model.SyncLog{
		ID:           uuid.New(),
		UserID:       userID,
		ConnectionID: connectionID,
		Status:       model.SyncStatusSyncing,
		SyncType:     syncType,
		StartedAt:    time.Now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// CompleteSyncLog closes a log as completed with the item count.
func (s *SyncLogsStore) CompleteSyncLog(id uuid.UUID, itemsSynced int) error {
	return s.db.Model(&model.SyncLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       model.SyncStatusCompleted,
			"completed_at": time.Now(),
			"items_synced": itemsSynced,
		}).Error
}

// FailSyncLog closes a log as failed with the error message.
func (s *SyncLogsStore) FailSyncLog(id uuid.UUID, message string) error {
	return s.db.Model(&model.SyncLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        model.SyncStatusFailed,
			"completed_at":  time.Now(),
			"error_message": message,
		}).Error
}

// FetchSyncLog retrieves a single log owned by the user.
func (s *SyncLogsStore) FetchSyncLog(userID, id uuid.UUID) (*model.SyncLog, error) {
	var log model.SyncLog
	tx := s.db.Where("id = ? AND user_id = ?", id, userID).First(&log)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrSyncLogNotFound
		}
		return nil, tx.Error
	}
	return &log, nil
}

// ListRecentSyncLogs returns the user's latest logs, newest first.
func (s *SyncLogsStore) ListRecentSyncLogs(userID uuid.UUID, limit int) ([]model.SyncLog, error) {
	var logs []model.SyncLog
	tx := s.db.Where("user_id = ?", userID).Order("started_at desc").Limit(limit).Find(&logs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return logs, nil
}
