package model

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is a self-reported block of study time, used by the
// dashboard's weekly study total.
type StudySession struct {
	ID              uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID          uuid.UUID  `json:"-"`
	CourseID        *uuid.UUID `json:"course_id"`
	AssignmentID    *uuid.UUID `json:"assignment_id"`
	DurationMinutes int        `json:"duration_minutes"`
	FocusScore      *int       `json:"focus_score"`
	SessionType     string     `json:"session_type"`
	Notes           *string    `json:"notes"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         time.Time  `json:"ended_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (s StudySession) TableName() string {
	return "study_sessions"
}
