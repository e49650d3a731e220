package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Ensure StatsStore implements store.StatsStore
var _ store.StatsStore = (*StatsStore)(nil)

// StatsStore implements store.StatsStore using GORM
type StatsStore struct {
	db *gorm.DB
}

// NewStatsStore creates a new StatsStore
func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

// DashboardStats computes the summary counters for a user in one query.
func (s *StatsStore) DashboardStats(userID uuid.UUID) (*store.DashboardStats, error) {
	var row struct {
		TotalCourses         int
		CompletedAssignments int
		UpcomingAssignments  int
		OverdueAssignments   int
		AverageScore         float64
		TotalStudyTimeWeek   int
	}

	err := s.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM courses WHERE user_id = @user) AS total_courses,
			(SELECT COUNT(*) FROM assignments WHERE user_id = @user AND status = 'completed') AS completed_assignments,
			(SELECT COUNT(*) FROM assignments WHERE user_id = @user AND status = 'upcoming' AND due_date > NOW()) AS upcoming_assignments,
			(SELECT COUNT(*) FROM assignments WHERE user_id = @user AND status = 'overdue') AS overdue_assignments,
			(SELECT COALESCE(AVG(score), 0) FROM grades WHERE user_id = @user) AS average_score,
			(SELECT COALESCE(SUM(duration_minutes), 0) FROM study_sessions
				WHERE user_id = @user AND started_at >= NOW() - INTERVAL '7 days') AS total_study_time_week
	`, map[string]interface{}{"user": userID}).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &store.DashboardStats{
		TotalCourses:         row.TotalCourses,
		CompletedAssignments: row.CompletedAssignments,
		UpcomingAssignments:  row.UpcomingAssignments,
		OverdueAssignments:   row.OverdueAssignments,
		AverageScore:         row.AverageScore,
		TotalStudyTimeWeek:   row.TotalStudyTimeWeek,
	}, nil
}

// DueSoon returns upcoming assignments due within the window, soonest
// first. Already-overdue work is counted by the overdue stat instead.
func (s *StatsStore) DueSoon(userID uuid.UUID, window time.Duration) ([]model.Assignment, error) {
	now := time.Now()

	var assignments []model.Assignment
	tx := s.db.
		Where("user_id = ?", userID).
		Where("status = ?", model.AssignmentStatusUpcoming).
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", now, now.Add(window)).
		Order("due_date asc").
		Find(&assignments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return assignments, nil
}
