package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type instructorCoursesResponse struct {
	envelope
	Courses []models.InstructorCourse `json:"courses"`
}

// InstructorCourses fetches the courses taught by an instructor, each with
// its live enrollment count.
func (c *Client) InstructorCourses(ctx context.Context, instructorID string) ([]models.InstructorCourse, error) {
	query := map[string]string{"instructor_id": instructorID}

	var out instructorCoursesResponse
	if err := c.do(ctx, http.MethodGet, "/instructor/courses", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

type studentsResponse struct {
	envelope
	Students []models.CourseStudent `json:"students"`
}

// CourseStudents fetches the roster of a taught course. Dropped students
// never appear.
func (c *Client) CourseStudents(ctx context.Context, instructorID, courseID string) ([]models.CourseStudent, error) {
	query := map[string]string{"instructor_id": instructorID}

	var out studentsResponse
	if err := c.do(ctx, http.MethodGet, "/instructor/courses/"+courseID+"/students", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Students, nil
}

// GradeStudent records a grade and status for a student in a course.
func (c *Client) GradeStudent(ctx context.Context, req models.GradeRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/instructor/grade", nil, req, &out)
}

// RemoveStudent drops a student from a course.
func (c *Client) RemoveStudent(ctx context.Context, req models.RemoveStudentRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/instructor/remove-student", nil, req, &out)
}

// CourseModules fetches the modules of a taught course.
func (c *Client) CourseModules(ctx context.Context, instructorID, courseID string) ([]models.Module, error) {
	query := map[string]string{"instructor_id": instructorID}

	var out modulesResponse
	if err := c.do(ctx, http.MethodGet, "/instructor/courses/"+courseID+"/modules", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Modules, nil
}

// CreateModule creates a module for a taught course.
func (c *Client) CreateModule(ctx context.Context, req models.CreateModuleRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/instructor/module", nil, req, &out)
}

// AddModuleContent attaches content to an existing module.
func (c *Client) AddModuleContent(ctx context.Context, req models.AddContentRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/instructor/module-content", nil, req, &out)
}
