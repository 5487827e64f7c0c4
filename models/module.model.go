package models

// Content types allowed inside a module.
const (
	ContentVideo      = "video"
	ContentDocument   = "document"
	ContentQuiz       = "quiz"
	ContentAssignment = "assignment"
)

// ContentTypes lists the valid content type values.
var ContentTypes = []string{ContentVideo, ContentDocument, ContentQuiz, ContentAssignment}

// Module is a course module. The student view carries its content inline;
// the instructor listing returns modules without content.
type Module struct {
	ModuleNumber int       `json:"module_number"`
	Name         string    `json:"name"`
	Duration     string    `json:"duration"`
	Content      []Content `json:"content,omitempty"`
}

// Content is a single content item inside a module.
type Content struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	URL       string `json:"url"`
}

// CreateModuleRequest creates a module for a course the instructor teaches.
type CreateModuleRequest struct {
	InstructorID string `json:"instructor_id"`
	CourseID     string `json:"course_id"`
	ModuleNumber int    `json:"module_number"`
	Name         string `json:"name"`
	Duration     string `json:"duration"`
}

// AddContentRequest attaches content to an existing module.
type AddContentRequest struct {
	InstructorID string `json:"instructor_id"`
	CourseID     string `json:"course_id"`
	ModuleNumber int    `json:"module_number"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	URL          string `json:"url"`
}
