package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type usersResponse struct {
	envelope
	Users []models.User `json:"users"`
}

// ListUsers fetches all users (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out usersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// ApproveUser approves a pending user. Approval is monotonic; only
// deletion removes an approved user.
func (c *Client) ApproveUser(ctx context.Context, userID string) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/approve", nil, nil, &out)
}

// DeleteUser removes a user record entirely.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	var out simpleResponse
	return c.do(ctx, http.MethodDelete, "/admin/users/"+userID, nil, nil, &out)
}

type instructorsResponse struct {
	envelope
	Instructors []models.Instructor `json:"instructors"`
}

// ListInstructors fetches all instructors with their details.
func (c *Client) ListInstructors(ctx context.Context) ([]models.Instructor, error) {
	var out instructorsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/instructors", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Instructors, nil
}

// AdminCourses fetches the course catalog through the admin view.
func (c *Client) AdminCourses(ctx context.Context) ([]models.Course, error) {
	var out coursesResponse
	if err := c.do(ctx, http.MethodGet, "/admin/courses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// CreateCourse creates a new course.
func (c *Client) CreateCourse(ctx context.Context, req models.CreateCourseRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/admin/courses", nil, req, &out)
}

// UpdateCourse updates an existing course.
func (c *Client) UpdateCourse(ctx context.Context, courseID string, req models.CreateCourseRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPut, "/admin/courses/"+courseID, nil, req, &out)
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, courseID string) error {
	var out simpleResponse
	return c.do(ctx, http.MethodDelete, "/admin/courses/"+courseID, nil, nil, &out)
}

// AssignInstructor links an instructor to a course.
func (c *Client) AssignInstructor(ctx context.Context, req models.AssignInstructorRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/admin/assign", nil, req, &out)
}

// RemoveInstructor unlinks an instructor from a course.
func (c *Client) RemoveInstructor(ctx context.Context, courseID, instructorID string) error {
	var out simpleResponse
	return c.do(ctx, http.MethodDelete, "/admin/courses/"+courseID+"/instructors/"+instructorID, nil, nil, &out)
}
