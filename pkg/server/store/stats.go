package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/model"
)

// DashboardStats summarizes a user's cached Canvas data.
type DashboardStats struct {
	TotalCourses         int     `json:"total_courses"`
	CompletedAssignments int     `json:"completed_assignments"`
	UpcomingAssignments  int     `json:"upcoming_assignments"`
	OverdueAssignments   int     `json:"overdue_assignments"`
	AverageScore         float64 `json:"average_score"`
	TotalStudyTimeWeek   int     `json:"total_study_time_week"`
}

// StatsStore abstracts dashboard aggregation queries
type StatsStore interface {
	// DashboardStats computes the summary counters for a user.
	DashboardStats(userID uuid.UUID) (*DashboardStats, error)

	// DueSoon returns undone assignments due within the window, soonest
	// first.
	DueSoon(userID uuid.UUID, window time.Duration) ([]model.Assignment, error)
}
