package models

// Role-specific dashboard summaries returned by GET /dashboard. The
// endpoint returns only the fields for the requested role; unrelated
// fields stay zero.
type DashboardSummary struct {
	// student
	EnrolledCount  int `json:"enrolled_count"`
	CompletedCount int `json:"completed_count"`
	// instructor
	TotalCourses int `json:"total_courses"`
	// admin
	TotalUsers int `json:"total_users"`
	// analyst
	TotalEnrollments int `json:"total_enrollments"`
}

// AuthUser is the account identity returned by login/signup.
type AuthUser struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
