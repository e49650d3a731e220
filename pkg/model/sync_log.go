package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncLog records one sync run against a connection. A row starts in
// syncing and ends in completed or failed, never both.
type SyncLog struct {
	ID           uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID  `json:"-"`
	ConnectionID uuid.UUID  `gorm:"column:canvas_connection_id" json:"connection_id"`
	Status       SyncStatus `gorm:"type:text" json:"status"`
	SyncType     string     `json:"sync_type"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	ErrorMessage *string    `json:"error_message"`
	ItemsSynced  int        `json:"items_synced"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (s SyncLog) TableName() string {
	return "sync_logs"
}
