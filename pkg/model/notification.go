package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user, e.g. a sync failure or
// an approaching due date.
type Notification struct {
	ID               uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID           uuid.UUID  `json:"-"`
	AssignmentID     *uuid.UUID `json:"assignment_id"`
	Title            string     `json:"title"`
	Message          *string    `json:"message"`
	NotificationType string     `json:"notification_type"`
	Read             bool       `json:"read"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (n Notification) TableName() string {
	return "notifications"
}
