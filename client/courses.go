package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type coursesResponse struct {
	envelope
	Courses []models.Course `json:"courses"`
}

// ListCourses fetches the full course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var out coursesResponse
	if err := c.do(ctx, http.MethodGet, "/courses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

type simpleResponse struct {
	envelope
}

// Enroll enrolls a student into a course.
func (c *Client) Enroll(ctx context.Context, req models.EnrollRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/courses/enroll", nil, req, &out)
}

type myCoursesResponse struct {
	envelope
	Courses []models.EnrolledCourse `json:"courses"`
}

// MyCourses fetches the caller's enrollments, optionally filtered by
// status (ongoing or completed).
func (c *Client) MyCourses(ctx context.Context, userID, status string) ([]models.EnrolledCourse, error) {
	query := map[string]string{"user_id": userID}
	if status != "" {
		query["status"] = status
	}

	var out myCoursesResponse
	if err := c.do(ctx, http.MethodGet, "/courses/my-courses", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}
