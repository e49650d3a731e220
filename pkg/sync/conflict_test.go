package sync

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/model"
)

func TestDetectConflicts(t *testing.T) {
	connectionID := uuid.New()
	oldDue := time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC)
	newDue := oldDue.Add(48 * time.Hour)
	points := 100.0

	cache := NewMockCacheStore()
	cache.On("ListCachedAssignments", connectionID).Return([]model.Assignment{
		{CanvasAssignmentID: "1", Title: "Essay", DueDate: &oldDue, PointsPossible: &points},
		{CanvasAssignmentID: "2", Title: "Quiz", PointsPossible: &points},
	}, nil)

	payload := &canvas.SyncPayload{
		Courses: []canvas.CourseData{
			{
				Course: canvas.Course{ID: 10},
				Assignments: []canvas.Assignment{
					// Due date moved and the title was edited upstream
					{ID: 1, Name: "Final essay", DueAt: &newDue, PointsPossible: &points},
					// Unchanged
					{ID: 2, Name: "Quiz", PointsPossible: &points},
					// New upstream, not a conflict
					{ID: 3, Name: "Surprise homework"},
				},
			},
		},
	}

	conflicts, err := DetectConflicts(cache, connectionID, payload)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)

	assert.Equal(t, "1", conflicts[0].CanvasAssignmentID)
	assert.Equal(t, "Final essay", conflicts[0].Title)
	assert.ElementsMatch(t, []string{"title", "due_date"}, conflicts[0].Fields)
}

func TestDetectConflictsSubmissionChanges(t *testing.T) {
	connectionID := uuid.New()
	submitted := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	cache := NewMockCacheStore()
	cache.On("ListCachedAssignments", connectionID).Return([]model.Assignment{
		{CanvasAssignmentID: "7", Title: "Lab"},
	}, nil)

	payload := &canvas.SyncPayload{
		Courses: []canvas.CourseData{
			{
				Course: canvas.Course{ID: 10},
				Assignments: []canvas.Assignment{
					{ID: 7, Name: "Lab", Submission: &canvas.Submission{SubmittedAt: &submitted}},
				},
			},
		},
	}

	conflicts, err := DetectConflicts(cache, connectionID, payload)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, []string{"submitted_at"}, conflicts[0].Fields)
}

func TestDetectConflictsEmptyCache(t *testing.T) {
	connectionID := uuid.New()

	cache := NewMockCacheStore()
	cache.On("ListCachedAssignments", connectionID).Return([]model.Assignment{}, nil)

	conflicts, err := DetectConflicts(cache, connectionID, testPayload())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
