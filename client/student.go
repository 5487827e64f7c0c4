package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type profileResponse struct {
	envelope
	Profile *models.StudentProfile `json:"profile"`
}

// GetProfile fetches the student's personal information.
func (c *Client) GetProfile(ctx context.Context, userID string) (*models.StudentProfile, error) {
	query := map[string]string{"user_id": userID}

	var out profileResponse
	if err := c.do(ctx, http.MethodGet, "/student/profile", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

// UpdateProfile updates the student's personal information.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPut, "/student/profile", nil, req, &out)
}

type modulesResponse struct {
	envelope
	Modules []models.Module `json:"modules"`
}

// StudentCourseModules fetches modules with their content for an enrolled
// course.
func (c *Client) StudentCourseModules(ctx context.Context, userID, courseID string) ([]models.Module, error) {
	query := map[string]string{"user_id": userID}

	var out modulesResponse
	if err := c.do(ctx, http.MethodGet, "/student/courses/"+courseID+"/modules", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Modules, nil
}

type assignmentsResponse struct {
	envelope
	Assignments []models.Assignment `json:"assignments"`
}

// StudentCourseAssignments fetches the course assignments with the
// caller's submission state.
func (c *Client) StudentCourseAssignments(ctx context.Context, userID, courseID string) ([]models.Assignment, error) {
	query := map[string]string{"user_id": userID}

	var out assignmentsResponse
	if err := c.do(ctx, http.MethodGet, "/student/courses/"+courseID+"/assignments", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Assignments, nil
}

type announcementsResponse struct {
	envelope
	Announcements []models.Announcement `json:"announcements"`
}

// StudentCourseAnnouncements fetches course announcements.
func (c *Client) StudentCourseAnnouncements(ctx context.Context, userID, courseID string) ([]models.Announcement, error) {
	query := map[string]string{"user_id": userID}

	var out announcementsResponse
	if err := c.do(ctx, http.MethodGet, "/student/courses/"+courseID+"/announcements", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Announcements, nil
}

type courseAnalyticsResponse struct {
	envelope
	Published bool                    `json:"published"`
	Data      *models.CourseAnalytics `json:"data"`
}

// StudentCourseAnalytics fetches the per-course insight block. Data is nil
// unless the analyst has published analytics for the course.
func (c *Client) StudentCourseAnalytics(ctx context.Context, userID, courseID string) (*models.CourseAnalytics, error) {
	query := map[string]string{"user_id": userID}

	var out courseAnalyticsResponse
	if err := c.do(ctx, http.MethodGet, "/student/courses/"+courseID+"/analytics", query, nil, &out); err != nil {
		return nil, err
	}
	if !out.Published {
		return nil, nil
	}
	return out.Data, nil
}

// SubmitAssignment submits a solution URL for an assignment.
func (c *Client) SubmitAssignment(ctx context.Context, req models.SubmitAssignmentRequest) error {
	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/student/assignments/submit", nil, req, &out)
}
