package courseValidator

import (
	"strings"

	"coursehub/models"
)

// GradeForm is the raw grading buffer.
type GradeForm struct {
	StudentID string
	Grade     string
	Status    string
}

// Grade validates a grading form. Status defaults to completed, matching
// the backend's grading semantics.
func Grade(instructorID, courseID string, f GradeForm) (*models.GradeRequest, map[string]string) {
	errors := make(map[string]string)

	if courseID == "" {
		errors["course_id"] = "Select a course first!"
	}
	if strings.TrimSpace(f.StudentID) == "" {
		errors["student_id"] = "Student is required!"
	}
	if strings.TrimSpace(f.Grade) == "" {
		errors["grade"] = "Grade is required!"
	}

	status := strings.TrimSpace(f.Status)
	if status == "" {
		status = models.StatusCompleted
	}
	if status != models.StatusOngoing && status != models.StatusCompleted {
		errors["status"] = "Status must be ongoing or completed!"
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &models.GradeRequest{
		InstructorID: instructorID,
		CourseID:     courseID,
		StudentID:    strings.TrimSpace(f.StudentID),
		Grade:        strings.TrimSpace(f.Grade),
		Status:       status,
	}, nil
}

// Assign validates an assign-instructor selection.
func Assign(instructorID, courseID string) (*models.AssignInstructorRequest, map[string]string) {
	errors := make(map[string]string)

	if strings.TrimSpace(instructorID) == "" {
		errors["instructor_id"] = "Instructor is required!"
	}
	if strings.TrimSpace(courseID) == "" {
		errors["course_id"] = "Course is required!"
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &models.AssignInstructorRequest{
		InstructorID: strings.TrimSpace(instructorID),
		CourseID:     strings.TrimSpace(courseID),
	}, nil
}
