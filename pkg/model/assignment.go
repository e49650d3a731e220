package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Assignment is a cached Canvas assignment.
type Assignment struct {
	ID                 uuid.UUID        `gorm:"primaryKey" json:"id"`
	UserID             uuid.UUID        `json:"-"`
	CourseID           uuid.UUID        `json:"course_id"`
	CanvasAssignmentID string           `json:"canvas_assignment_id"`
	Title              string           `json:"title"`
	Description        *string          `json:"description"`
	DueDate            *time.Time       `json:"due_date"`
	PointsPossible     *float64         `json:"points_possible"`
	SubmissionTypes    pq.StringArray   `gorm:"type:text[]" json:"submission_types"`
	Status             AssignmentStatus `gorm:"type:text" json:"status"`
	SubmittedAt        *time.Time       `json:"submitted_at"`
	GradedAt           *time.Time       `json:"graded_at"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	Course *Course `gorm:"-" json:"course,omitempty"`
}

func (a Assignment) TableName() string {
	return "assignments"
}

// DeriveAssignmentStatus computes the lifecycle status from the upstream
// timestamps. Later checks win: a graded assignment is completed no
// matter how overdue it was.
func DeriveAssignmentStatus(dueAt, submittedAt, gradedAt *time.Time, now time.Time) AssignmentStatus {
	status := AssignmentStatusUpcoming
	if dueAt != nil && dueAt.Before(now) {
		status = AssignmentStatusOverdue
	}
	if submittedAt != nil {
		status = AssignmentStatusSubmitted
	}
	if gradedAt != nil {
		status = AssignmentStatusCompleted
	}
	return status
}
