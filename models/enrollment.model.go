package models

// Enrollment statuses. Dropped enrollments exist on the backend but are
// filtered out of every roster the frontend sees.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// EnrolledCourse is a my-courses row: course fields joined with the
// caller's enrollment state.
type EnrolledCourse struct {
	CourseID          string `json:"course_id"`
	Title             string `json:"title"`
	Duration          string `json:"duration"`
	Level             string `json:"level"`
	UniversityName    string `json:"university_name"`
	UniversityRanking *int   `json:"university_ranking"`
	InstructorNames   string `json:"instructor_names"`
	Status            string `json:"status"`
	Grade             string `json:"grade"`
	EnrollDate        string `json:"enroll_date"`
	CompletionDate    string `json:"completion_date"`
}

// CourseStudent is an instructor roster row.
type CourseStudent struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	Grade          string `json:"grade"`
	EnrollDate     string `json:"enroll_date"`
	CompletionDate string `json:"completion_date"`
}

// InstructorCourse is a taught course with its live enrollment count.
type InstructorCourse struct {
	CourseID      string `json:"course_id"`
	Title         string `json:"title"`
	Duration      string `json:"duration"`
	Level         string `json:"level"`
	Description   string `json:"description"`
	EnrolledCount int    `json:"enrolled_count"`
}

// EnrollRequest enrolls a student into a course.
type EnrollRequest struct {
	UserID   string `json:"user_id"`
	CourseID string `json:"course_id"`
}

// GradeRequest records a grade for a student in a course.
type GradeRequest struct {
	InstructorID string `json:"instructor_id"`
	CourseID     string `json:"course_id"`
	StudentID    string `json:"student_id"`
	Grade        string `json:"grade"`
	Status       string `json:"status"`
}

// RemoveStudentRequest drops a student from a course.
type RemoveStudentRequest struct {
	InstructorID string `json:"instructor_id"`
	CourseID     string `json:"course_id"`
	StudentID    string `json:"student_id"`
}
