package models

// Assignment is a course assignment with the caller's submission state.
// Submission fields stay null until the student submits; marks and
// feedback stay null until graded.
type Assignment struct {
	AssignmentID  string   `json:"assignment_id"`
	CourseID      string   `json:"course_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	AssignmentURL string   `json:"assignment_url"`
	MaxMarks      float64  `json:"max_marks"`
	DueDate       string   `json:"due_date"`
	SubmissionURL *string  `json:"submission_url"`
	MarksObtained *float64 `json:"marks_obtained"`
	Feedback      *string  `json:"feedback"`
	SubmittedAt   *string  `json:"submitted_at"`
}

// Submitted reports whether the caller has already submitted.
func (a Assignment) Submitted() bool {
	return a.SubmissionURL != nil && *a.SubmissionURL != ""
}

// SubmitAssignmentRequest submits a solution URL for an assignment.
type SubmitAssignmentRequest struct {
	UserID       string `json:"user_id"`
	AssignmentID string `json:"assignment_id"`
	URL          string `json:"url"`
}

// Announcement is a course announcement shown on the student course view.
type Announcement struct {
	AnnouncementID string `json:"announcement_id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	PostedAt       string `json:"posted_at"`
}
