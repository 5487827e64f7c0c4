package main

// Row types mirror the original dashboard schema: UUID string keys,
// composite link tables for teaches and enrollments.

type UserRow struct {
	UserID   string `gorm:"primaryKey;column:user_id"`
	Name     string `gorm:"column:name"`
	Email    string `gorm:"uniqueIndex;column:email"`
	Password string `gorm:"column:password"`
	Role     string `gorm:"column:role"`
	Approved bool   `gorm:"column:approved"`
}

func (UserRow) TableName() string { return "users" }

type StudentRow struct {
	UserID      string `gorm:"primaryKey;column:user_id"`
	Branch      string `gorm:"column:branch"`
	Country     string `gorm:"column:country"`
	DOB         string `gorm:"column:dob"`
	PhoneNumber string `gorm:"column:phone_number"`
}

func (StudentRow) TableName() string { return "students" }

type InstructorRow struct {
	UserID      string `gorm:"primaryKey;column:user_id"`
	Branch      string `gorm:"column:branch"`
	PhoneNumber string `gorm:"column:phone_number"`
}

func (InstructorRow) TableName() string { return "instructors" }

type CourseRow struct {
	CourseID          string   `gorm:"primaryKey;column:course_id"`
	Title             string   `gorm:"column:title"`
	Duration          string   `gorm:"column:duration"`
	Level             string   `gorm:"column:level"`
	Description       string   `gorm:"column:description"`
	Fees              *float64 `gorm:"column:fees"`
	UniversityName    string   `gorm:"column:university_name"`
	UniversityRanking *int     `gorm:"column:university_ranking"`
	Published         bool     `gorm:"column:published"`
}

func (CourseRow) TableName() string { return "courses" }

type TeachesRow struct {
	InstructorID string `gorm:"primaryKey;column:instructor_id"`
	CourseID     string `gorm:"primaryKey;column:course_id"`
}

func (TeachesRow) TableName() string { return "teaches" }

type EnrollmentRow struct {
	UserID         string `gorm:"primaryKey;column:user_id"`
	CourseID       string `gorm:"primaryKey;column:course_id"`
	Status         string `gorm:"column:status"`
	Grade          string `gorm:"column:grade"`
	EnrollDate     string `gorm:"column:enroll_date"`
	CompletionDate string `gorm:"column:completion_date"`
}

func (EnrollmentRow) TableName() string { return "enrolled_in" }

type ModuleRow struct {
	CourseID     string `gorm:"primaryKey;column:course_id"`
	ModuleNumber int    `gorm:"primaryKey;column:module_number"`
	Name         string `gorm:"column:name"`
	Duration     string `gorm:"column:duration"`
}

func (ModuleRow) TableName() string { return "modules" }

type ContentRow struct {
	ContentID    string `gorm:"primaryKey;column:content_id"`
	CourseID     string `gorm:"column:course_id"`
	ModuleNumber int    `gorm:"column:module_number"`
	Title        string `gorm:"column:title"`
	Type         string `gorm:"column:type"`
	URL          string `gorm:"column:url"`
}

func (ContentRow) TableName() string { return "module_content" }

type AssignmentRow struct {
	AssignmentID  string  `gorm:"primaryKey;column:assignment_id"`
	CourseID      string  `gorm:"column:course_id"`
	Title         string  `gorm:"column:title"`
	Description   string  `gorm:"column:description"`
	AssignmentURL string  `gorm:"column:assignment_url"`
	MaxMarks      float64 `gorm:"column:max_marks"`
	DueDate       string  `gorm:"column:due_date"`
}

func (AssignmentRow) TableName() string { return "assignments" }

type SubmissionRow struct {
	AssignmentID  string   `gorm:"primaryKey;column:assignment_id"`
	UserID        string   `gorm:"primaryKey;column:user_id"`
	SubmissionURL string   `gorm:"column:submission_url"`
	MarksObtained *float64 `gorm:"column:marks_obtained"`
	Feedback      *string  `gorm:"column:feedback"`
	SubmittedAt   string   `gorm:"column:submitted_at"`
}

func (SubmissionRow) TableName() string { return "submissions" }

type AnnouncementRow struct {
	AnnouncementID string `gorm:"primaryKey;column:announcement_id"`
	CourseID       string `gorm:"column:course_id"`
	Title          string `gorm:"column:title"`
	Body           string `gorm:"column:body"`
	PostedAt       string `gorm:"column:posted_at"`
}

func (AnnouncementRow) TableName() string { return "announcements" }
