package canvas

import "time"

// Teacher is the display entry Canvas returns under a course's teachers
// include.
type Teacher struct {
	DisplayName string `json:"display_name"`
}

// Course is a course as returned by GET /api/v1/courses.
type Course struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	CourseCode       *string    `json:"course_code"`
	EnrollmentTermID *int64     `json:"enrollment_term_id"`
	StartAt          *time.Time `json:"start_at"`
	EndAt            *time.Time `json:"end_at"`
	Teachers         []Teacher  `json:"teachers"`
}

// InstructorName returns the first listed teacher, if any.
func (c Course) InstructorName() *string {
	if len(c.Teachers) == 0 {
		return nil
	}
	return &c.Teachers[0].DisplayName
}

// Submission is the caller's own submission, present when assignments are
// fetched with include[]=submission.
type Submission struct {
	SubmittedAt *time.Time `json:"submitted_at"`
	GradedAt    *time.Time `json:"graded_at"`
	Score       *float64   `json:"score"`
}

// Assignment is an assignment as returned by
// GET /api/v1/courses/{id}/assignments.
type Assignment struct {
	ID              int64       `json:"id"`
	CourseID        int64       `json:"course_id"`
	Name            string      `json:"name"`
	Description     *string     `json:"description"`
	DueAt           *time.Time  `json:"due_at"`
	PointsPossible  *float64    `json:"points_possible"`
	SubmissionTypes []string    `json:"submission_types"`
	Submission      *Submission `json:"submission"`
}

// SubmittedAt returns the submission timestamp, if the caller submitted.
func (a Assignment) SubmittedAt() *time.Time {
	if a.Submission == nil {
		return nil
	}
	return a.Submission.SubmittedAt
}

// GradedAt returns the grading timestamp, if the submission was graded.
func (a Assignment) GradedAt() *time.Time {
	if a.Submission == nil {
		return nil
	}
	return a.Submission.GradedAt
}

// EnrollmentGrades is the grades block of an enrollment fetched with
// include[]=grades.
type EnrollmentGrades struct {
	CurrentScore *float64 `json:"current_score"`
	CurrentGrade *string  `json:"current_grade"`
	FinalScore   *float64 `json:"final_score"`
	FinalGrade   *string  `json:"final_grade"`
}

// Enrollment is the caller's enrollment in a course, carrying the course
// grade snapshot.
type Enrollment struct {
	ID       int64             `json:"id"`
	CourseID int64             `json:"course_id"`
	Grades   *EnrollmentGrades `json:"grades"`
	UpdatedAt *time.Time       `json:"updated_at"`
}

// User is the caller's own Canvas user record.
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	LoginID *string `json:"login_id"`
}

// ValidationResult reports whether a token works against an instance.
type ValidationResult struct {
	Valid        bool   `json:"valid"`
	User         *User  `json:"user_info,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// CourseData bundles the per-course fetches of one sync run.
type CourseData struct {
	Course      Course
	Assignments []Assignment
	Enrollments []Enrollment

	// Partial is set when a per-course fetch failed and its list was
	// replaced with an empty one.
	Partial bool
}

// SyncPayload is everything FetchAll gathered from a Canvas instance.
type SyncPayload struct {
	Courses []CourseData

	// PartialFailures counts courses where at least one fetch degraded
	// to an empty list.
	PartialFailures int
}
