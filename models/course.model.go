package models

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course is the catalog record. Fees and university ranking are nullable
// on the backend; instructor_names is a derived display string.
type Course struct {
	CourseID          string   `json:"course_id"`
	Title             string   `json:"title"`
	Duration          string   `json:"duration"`
	Level             string   `json:"level"`
	Description       string   `json:"description"`
	Fees              *float64 `json:"fees"`
	UniversityName    string   `json:"university_name"`
	UniversityRanking *int     `json:"university_ranking"`
	InstructorNames   string   `json:"instructor_names"`
}

// CreateCourseRequest is the admin create/update payload. Numeric fields
// arrive here already coerced by the course validator.
type CreateCourseRequest struct {
	Title             string   `json:"title"`
	Duration          string   `json:"duration"`
	Level             string   `json:"level"`
	Description       string   `json:"description"`
	Fees              *float64 `json:"fees,omitempty"`
	UniversityName    string   `json:"university_name"`
	UniversityRanking *int     `json:"university_ranking,omitempty"`
}

// AssignInstructorRequest links an instructor to a course.
type AssignInstructorRequest struct {
	InstructorID string `json:"instructor_id"`
	CourseID     string `json:"course_id"`
}
