package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEvent is a user-authored calendar entry. Unlike assignments it
// has no Canvas counterpart and is never touched by a sync run.
type ScheduleEvent struct {
	ID           uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID  `json:"-"`
	CourseID     *uuid.UUID `json:"course_id"`
	AssignmentID *uuid.UUID `json:"assignment_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	EventType    string     `json:"event_type"`
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	AllDay       bool       `json:"all_day"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (e ScheduleEvent) TableName() string {
	return "schedule_events"
}
