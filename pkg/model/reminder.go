package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a user-scheduled nudge, optionally tied to an assignment.
type Reminder struct {
	ID           uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID  `json:"-"`
	AssignmentID *uuid.UUID `json:"assignment_id"`
	Title        string     `json:"title"`
	Message      *string    `json:"message"`
	RemindAt     time.Time  `json:"remind_at"`
	Dismissed    bool       `json:"dismissed"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (r Reminder) TableName() string {
	return "reminders"
}
