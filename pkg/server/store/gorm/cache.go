package gorm

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Ensure CacheStore implements store.CacheStore
var _ store.CacheStore = (*CacheStore)(nil)

// CacheStore implements store.CacheStore using GORM
type CacheStore struct {
	db *gorm.DB
}

// NewCacheStore creates a new CacheStore
func NewCacheStore(db *gorm.DB) *CacheStore {
	return &CacheStore{db: db}
}

// ApplySyncData upserts all staged rows in one transaction and stamps the
// connection's last sync time. Assignments and grades whose course was
// not part of the batch are skipped rather than failing the run.
func (s *CacheStore) ApplySyncData(userID, connectionID uuid.UUID, data store.SyncData) (int, error) {
	total := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		courseIDs := make(map[string]uuid.UUID, len(data.Courses))

		for _, course := range data.Courses {
			var row struct {
				ID uuid.UUID
			}
			err := tx.Raw(`
				INSERT INTO courses
					(id, user_id, canvas_connection_id, canvas_course_id, name, course_code,
					 instructor_name, enrollment_status, start_date, end_date)
				VALUES (?, ?, ?, ?, ?, ?, ?, 'active', ?, ?)
				ON CONFLICT (canvas_connection_id, canvas_course_id)
				DO UPDATE SET
					name = EXCLUDED.name,
					course_code = EXCLUDED.course_code,
					instructor_name = EXCLUDED.instructor_name,
					enrollment_status = EXCLUDED.enrollment_status,
					start_date = EXCLUDED.start_date,
					end_date = EXCLUDED.end_date,
					updated_at = NOW()
				RETURNING id
			`, uuid.New(), userID, connectionID, course.CanvasCourseID, course.Name,
				course.CourseCode, course.InstructorName, course.StartDate, course.EndDate,
			).Scan(&row).Error
			if err != nil {
				return err
			}

			courseIDs[course.CanvasCourseID] = row.ID
			total++
		}

		for _, assignment := range data.Assignments {
			courseID, ok := courseIDs[assignment.CanvasCourseID]
			if !ok {
				continue
			}

			err := tx.Exec(`
				INSERT INTO assignments
					(id, user_id, course_id, canvas_assignment_id, title, description,
					 due_date, points_possible, submission_types, status,
					 submitted_at, graded_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (course_id, canvas_assignment_id)
				DO UPDATE SET
					title = EXCLUDED.title,
					description = EXCLUDED.description,
					due_date = EXCLUDED.due_date,
					points_possible = EXCLUDED.points_possible,
					submission_types = EXCLUDED.submission_types,
					status = EXCLUDED.status,
					submitted_at = EXCLUDED.submitted_at,
					graded_at = EXCLUDED.graded_at,
					updated_at = NOW()
			`, uuid.New(), userID, courseID, assignment.CanvasAssignmentID,
				assignment.Title, assignment.Description, assignment.DueDate,
				assignment.PointsPossible, pq.StringArray(assignment.SubmissionTypes),
				assignment.Status, assignment.SubmittedAt, assignment.GradedAt,
			).Error
			if err != nil {
				return err
			}
			total++
		}

		for _, grade := range data.Grades {
			courseID, ok := courseIDs[grade.CanvasCourseID]
			if !ok {
				continue
			}

			err := tx.Exec(`
				INSERT INTO grades
					(id, user_id, course_id, canvas_grade_id, score, grade,
					 points_possible, graded_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (user_id, course_id, canvas_grade_id)
				DO UPDATE SET
					score = EXCLUDED.score,
					grade = EXCLUDED.grade,
					points_possible = EXCLUDED.points_possible,
					graded_at = EXCLUDED.graded_at,
					updated_at = NOW()
			`, uuid.New(), userID, courseID, grade.CanvasGradeID,
				grade.Score, grade.Grade, grade.PointsPossible, grade.GradedAt,
			).Error
			if err != nil {
				return err
			}
			total++
		}

		return tx.Exec(`
			UPDATE canvas_connections
			SET last_sync = NOW(), status = 'connected', updated_at = NOW()
			WHERE id = ?
		`, connectionID).Error
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// ListCourses returns the user's cached courses ordered by name.
func (s *CacheStore) ListCourses(userID uuid.UUID) ([]model.Course, error) {
	var courses []model.Course
	tx := s.db.Where("user_id = ?", userID).Order("name").Find(&courses)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return courses, nil
}

// ListAssignments returns cached assignments, soonest due first with
// undated assignments last.
func (s *CacheStore) ListAssignments(userID uuid.UUID, filter store.AssignmentFilter) ([]model.Assignment, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var assignments []model.Assignment
	tx := query.Order("due_date ASC NULLS LAST").Find(&assignments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return assignments, nil
}

// ListGrades returns cached grades, most recently graded first.
func (s *CacheStore) ListGrades(userID uuid.UUID, courseID *uuid.UUID) ([]model.Grade, error) {
	query := s.db.Where("user_id = ?", userID)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}

	var grades []model.Grade
	tx := query.Order("graded_at desc").Find(&grades)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return grades, nil
}

// ListCachedAssignments returns the current cache rows for a connection.
func (s *CacheStore) ListCachedAssignments(connectionID uuid.UUID) ([]model.Assignment, error) {
	var assignments []model.Assignment
	tx := s.db.
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Where("courses.canvas_connection_id = ?", connectionID).
		Find(&assignments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return assignments, nil
}
