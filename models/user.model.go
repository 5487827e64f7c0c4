package models

// User roles as stored by the backend.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	RoleAnalyst    = "analyst"
)

// User is the backend-owned user record as returned by /admin/users.
type User struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

// Instructor is the admin-facing instructor listing row.
type Instructor struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Branch      string `json:"branch"`
	PhoneNumber string `json:"phone_number"`
}

// StudentProfile is the student personal-information record.
// Name and email are account fields; the rest is profile data.
type StudentProfile struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Branch      string `json:"branch"`
	Country     string `json:"country"`
	DOB         string `json:"dob"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateProfileRequest carries the updatable profile fields.
type UpdateProfileRequest struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Branch      string `json:"branch"`
	Country     string `json:"country"`
	DOB         string `json:"dob"`
	PhoneNumber string `json:"phone_number"`
}
