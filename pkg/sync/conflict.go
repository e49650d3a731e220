package sync

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Conflict reports an assignment whose upstream fields diverged from the
// cached copy since the last sync.
type Conflict struct {
	CanvasAssignmentID string   `json:"canvas_assignment_id"`
	Title              string   `json:"title"`
	Fields             []string `json:"fields"`
}

// DetectConflicts compares a fetched payload against the connection's
// cached assignments and lists the fields that changed upstream.
// Assignments not yet cached are not conflicts, they are simply new.
func DetectConflicts(cache store.CacheStore, connectionID uuid.UUID, payload *canvas.SyncPayload) ([]Conflict, error) {
	cached, err := cache.ListCachedAssignments(connectionID)
	if err != nil {
		return nil, err
	}

	byCanvasID := make(map[string]model.Assignment, len(cached))
	for _, a := range cached {
		byCanvasID[a.CanvasAssignmentID] = a
	}

	var conflicts []Conflict
	for _, courseData := range payload.Courses {
		for _, fetched := range courseData.Assignments {
			id := strconv.FormatInt(fetched.ID, 10)
			current, ok := byCanvasID[id]
			if !ok {
				continue
			}

			fields := diffAssignment(current, fetched)
			if len(fields) > 0 {
				conflicts = append(conflicts, Conflict{
					CanvasAssignmentID: id,
					Title:              fetched.Name,
					Fields:             fields,
				})
			}
		}
	}

	return conflicts, nil
}

func diffAssignment(cached model.Assignment, fetched canvas.Assignment) []string {
	var fields []string

	if cached.Title != fetched.Name {
		fields = append(fields, "title")
	}
	if !timePtrEqual(cached.DueDate, fetched.DueAt) {
		fields = append(fields, "due_date")
	}
	if !floatPtrEqual(cached.PointsPossible, fetched.PointsPossible) {
		fields = append(fields, "points_possible")
	}
	if !timePtrEqual(cached.SubmittedAt, fetched.SubmittedAt()) {
		fields = append(fields, "submitted_at")
	}
	if !timePtrEqual(cached.GradedAt, fetched.GradedAt()) {
		fields = append(fields, "graded_at")
	}

	return fields
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
