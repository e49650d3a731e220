package sync

import (
	"strconv"
	"time"

	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// BuildSyncData converts a fetched Canvas payload into cache upserts.
// Assignment statuses are derived from the submission timestamps at the
// time of conversion.
func BuildSyncData(payload *canvas.SyncPayload) store.SyncData {
	return buildSyncData(payload, time.Now())
}

func buildSyncData(payload *canvas.SyncPayload, now time.Time) store.SyncData {
	var data store.SyncData

	for _, courseData := range payload.Courses {
		course := courseData.Course
		canvasCourseID := strconv.FormatInt(course.ID, 10)

		data.Courses = append(data.Courses, store.CourseUpsert{
			CanvasCourseID: canvasCourseID,
			Name:           course.Name,
			CourseCode:     course.CourseCode,
			InstructorName: course.InstructorName(),
			StartDate:      course.StartAt,
			EndDate:        course.EndAt,
		})

		for _, assignment := range courseData.Assignments {
			data.Assignments = append(data.Assignments, store.AssignmentUpsert{
				CanvasCourseID:     canvasCourseID,
				CanvasAssignmentID: strconv.FormatInt(assignment.ID, 10),
				Title:              assignment.Name,
				Description:        assignment.Description,
				DueDate:            assignment.DueAt,
				PointsPossible:     assignment.PointsPossible,
				SubmissionTypes:    assignment.SubmissionTypes,
				Status:             model.DeriveAssignmentStatus(assignment.DueAt, assignment.SubmittedAt(), assignment.GradedAt(), now),
				SubmittedAt:        assignment.SubmittedAt(),
				GradedAt:           assignment.GradedAt(),
			})
		}

		for _, enrollment := range courseData.Enrollments {
			if enrollment.Grades == nil || enrollment.Grades.CurrentScore == nil {
				continue
			}
			gradeID := strconv.FormatInt(enrollment.ID, 10)
			data.Grades = append(data.Grades, store.GradeUpsert{
				CanvasCourseID: canvasCourseID,
				CanvasGradeID:  &gradeID,
				Score:          enrollment.Grades.CurrentScore,
				Grade:          enrollment.Grades.CurrentGrade,
				GradedAt:       enrollment.UpdatedAt,
			})
		}
	}

	return data
}
