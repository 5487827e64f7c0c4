package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type overviewResponse struct {
	envelope
	Data *models.AnalystOverview `json:"data"`
}

// Overview fetches the analyst headline counters.
func (c *Client) Overview(ctx context.Context) (*models.AnalystOverview, error) {
	var out overviewResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/overview", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type analystCoursesResponse struct {
	envelope
	Courses []models.AnalystCourse `json:"courses"`
}

// AnalystCourses fetches per-course analytics rows.
func (c *Client) AnalystCourses(ctx context.Context) ([]models.AnalystCourse, error) {
	var out analystCoursesResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/courses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

type insightsResponse struct {
	envelope
	Insights *models.Insights `json:"insights"`
}

// Insights fetches the pre-built insight tables.
func (c *Client) Insights(ctx context.Context) (*models.Insights, error) {
	var out insightsResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/insights", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Insights, nil
}

type kpisResponse struct {
	envelope
	Data *models.KPIs `json:"data"`
}

// KPIs fetches the real-time KPI numbers.
func (c *Client) KPIs(ctx context.Context) (*models.KPIs, error) {
	var out kpisResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/kpis", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type geographicResponse struct {
	envelope
	Data []models.GeoPoint `json:"data"`
}

// Geographic fetches the students-per-country distribution.
func (c *Client) Geographic(ctx context.Context) ([]models.GeoPoint, error) {
	var out geographicResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/geographic", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type ageDemographicsResponse struct {
	envelope
	Data []models.AgePoint `json:"data"`
}

// AgeDemographics fetches the students-per-age-group distribution.
func (c *Client) AgeDemographics(ctx context.Context) ([]models.AgePoint, error) {
	var out ageDemographicsResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/age-demographics", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type hotTopicsResponse struct {
	envelope
	Data []models.HotTopic `json:"data"`
}

// HotTopics fetches the top courses by enrollment.
func (c *Client) HotTopics(ctx context.Context) ([]models.HotTopic, error) {
	var out hotTopicsResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/hot-topics", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type workloadResponse struct {
	envelope
	Data []models.InstructorWorkload `json:"data"`
}

// InstructorWorkloads fetches courses-per-instructor counts.
func (c *Client) InstructorWorkloads(ctx context.Context) ([]models.InstructorWorkload, error) {
	var out workloadResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/instructor-workload", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type chartBuilderResponse struct {
	envelope
	Data []models.ChartPoint `json:"data"`
}

// ChartBuilder fetches a pre-aggregated series for the given grouping and
// metric. courseID narrows grade-distribution series and may be empty.
func (c *Client) ChartBuilder(ctx context.Context, groupBy, metric, courseID string) ([]models.ChartPoint, error) {
	query := map[string]string{"groupBy": groupBy, "metric": metric}
	if courseID != "" {
		query["courseId"] = courseID
	}

	var out chartBuilderResponse
	if err := c.do(ctx, http.MethodGet, "/analyst/chart-builder", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// SetCoursePublished toggles whether a course's analytics are visible to
// its students.
func (c *Client) SetCoursePublished(ctx context.Context, courseID string, published bool) error {
	body := map[string]bool{"published": published}

	var out simpleResponse
	return c.do(ctx, http.MethodPost, "/analyst/courses/"+courseID+"/publish", nil, body, &out)
}
