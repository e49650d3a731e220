package model

import (
	"time"

	"github.com/google/uuid"
)

// Grade is a cached course-level grade snapshot from a Canvas enrollment.
type Grade struct {
	ID             uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID  `json:"-"`
	CourseID       uuid.UUID  `json:"course_id"`
	CanvasGradeID  *string    `json:"canvas_grade_id"`
	Score          *float64   `json:"score"`
	Grade          *string    `json:"grade"`
	PointsPossible *float64   `json:"points_possible"`
	GradedAt       *time.Time `json:"graded_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (g Grade) TableName() string {
	return "grades"
}
