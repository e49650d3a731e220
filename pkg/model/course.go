package model

import (
	"time"

	"github.com/google/uuid"
)

// Course is a cached Canvas course. Rows are keyed by the connection that
// fetched them plus the upstream course id, so two connections to the
// same institution keep separate caches.
type Course struct {
	ID               uuid.UUID  `gorm:"primaryKey" json:"id"`
	UserID           uuid.UUID  `json:"-"`
	ConnectionID     uuid.UUID  `gorm:"column:canvas_connection_id" json:"connection_id"`
	CanvasCourseID   string     `json:"canvas_course_id"`
	Name             string     `json:"name"`
	CourseCode       *string    `json:"course_code"`
	InstructorName   *string    `json:"instructor_name"`
	EnrollmentStatus string     `json:"enrollment_status"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (c Course) TableName() string {
	return "courses"
}
