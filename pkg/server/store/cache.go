package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/model"
)

// CourseUpsert is a fetched Canvas course staged for the cache.
type CourseUpsert struct {
	CanvasCourseID string
	Name           string
	CourseCode     *string
	InstructorName *string
	StartDate      *time.Time
	EndDate        *time.Time
}

// AssignmentUpsert is a fetched Canvas assignment staged for the cache.
// CanvasCourseID ties it back to its course; rows whose course is unknown
// are skipped.
type AssignmentUpsert struct {
	CanvasCourseID     string
	CanvasAssignmentID string
	Title              string
	Description        *string
	DueDate            *time.Time
	PointsPossible     *float64
	SubmissionTypes    []string
	Status             model.AssignmentStatus
	SubmittedAt        *time.Time
	GradedAt           *time.Time
}

// GradeUpsert is a fetched course grade snapshot staged for the cache.
type GradeUpsert struct {
	CanvasCourseID string
	CanvasGradeID  *string
	Score          *float64
	Grade          *string
	PointsPossible *float64
	GradedAt       *time.Time
}

// SyncData is everything one sync run fetched from Canvas.
type SyncData struct {
	Courses     []CourseUpsert
	Assignments []AssignmentUpsert
	Grades      []GradeUpsert
}

// Total returns the number of staged items.
func (d SyncData) Total() int {
	return len(d.Courses) + len(d.Assignments) + len(d.Grades)
}

// AssignmentFilter narrows ListAssignments.
type AssignmentFilter struct {
	CourseID *uuid.UUID
	Status   *model.AssignmentStatus
	Limit    int
	Offset   int
}

// CacheStore abstracts the cached Canvas data operations
type CacheStore interface {
	// ApplySyncData upserts all staged rows in one transaction and stamps
	// the connection's last sync time. Returns the number of rows written.
	ApplySyncData(userID, connectionID uuid.UUID, data SyncData) (int, error)

	// ListCourses returns the user's cached courses ordered by name.
	ListCourses(userID uuid.UUID) ([]model.Course, error)

	// ListAssignments returns cached assignments, soonest due first with
	// undated assignments last.
	ListAssignments(userID uuid.UUID, filter AssignmentFilter) ([]model.Assignment, error)

	// ListGrades returns cached grades, most recently graded first.
	ListGrades(userID uuid.UUID, courseID *uuid.UUID) ([]model.Grade, error)

	// ListCachedAssignments returns the current cache rows for a
	// connection keyed by canvas ids, for conflict detection.
	ListCachedAssignments(connectionID uuid.UUID) ([]model.Assignment, error)
}
