package dashboard

import (
	"context"
	"log"

	"coursehub/charts"
	"coursehub/client"
	"coursehub/models"
	"coursehub/notify"
)

// Analyst slice keys.
const (
	SliceOverview       SliceKey = "overview"
	SliceAnalystCourses SliceKey = "analyst_courses"
	SliceInsights       SliceKey = "insights"
	SliceKPIs           SliceKey = "kpis"
	SliceGeographic     SliceKey = "geographic"
	SliceAgeGroups      SliceKey = "age_groups"
	SliceHotTopics      SliceKey = "hot_topics"
	SliceWorkload       SliceKey = "workload"
)

// Analyst actions.
const (
	ActionTogglePublish Action = "toggle_publish"
)

// AnalystDashboard is the analyst view-state controller: platform-wide
// analytics, the interactive chart builder, and the per-course publish
// switch.
type AnalystDashboard struct {
	*Controller

	Overview  *models.AnalystOverview
	Courses   []models.AnalystCourse
	Insights  *models.Insights
	KPIs      *models.KPIs
	Geography []models.GeoPoint
	AgeGroups []models.AgePoint
	HotTopics []models.HotTopic
	Workload  []models.InstructorWorkload

	ActiveTab string

	// Chart-builder inputs and the last fetched series.
	GroupBy       string
	Metric        string
	ChartType     string
	GradeCourseID string
	ChartSeries   []models.ChartPoint
}

// NewAnalystDashboard wires the analyst slices and side-effect table.
func NewAnalystDashboard(api *client.Client, notifier *notify.Center, confirm ConfirmFunc) *AnalystDashboard {
	d := &AnalystDashboard{
		Controller: newController(api, notifier, confirm),
		ActiveTab:  "overview",
		GroupBy:    models.GroupByCourse,
		Metric:     models.MetricEnrollments,
		ChartType:  charts.KindBar,
	}

	d.registerSlice(SliceOverview, func(ctx context.Context) error {
		overview, err := api.Overview(ctx)
		if err != nil {
			return err
		}
		d.Overview = overview
		return nil
	})
	d.registerSlice(SliceAnalystCourses, func(ctx context.Context) error {
		courses, err := api.AnalystCourses(ctx)
		if err != nil {
			return err
		}
		d.Courses = courses
		return nil
	})
	d.registerSlice(SliceInsights, func(ctx context.Context) error {
		insights, err := api.Insights(ctx)
		if err != nil {
			return err
		}
		d.Insights = insights
		return nil
	})
	d.registerSlice(SliceKPIs, func(ctx context.Context) error {
		kpis, err := api.KPIs(ctx)
		if err != nil {
			return err
		}
		d.KPIs = kpis
		return nil
	})
	d.registerSlice(SliceGeographic, func(ctx context.Context) error {
		geo, err := api.Geographic(ctx)
		if err != nil {
			return err
		}
		d.Geography = geo
		return nil
	})
	d.registerSlice(SliceAgeGroups, func(ctx context.Context) error {
		ages, err := api.AgeDemographics(ctx)
		if err != nil {
			return err
		}
		d.AgeGroups = ages
		return nil
	})
	d.registerSlice(SliceHotTopics, func(ctx context.Context) error {
		topics, err := api.HotTopics(ctx)
		if err != nil {
			return err
		}
		d.HotTopics = topics
		return nil
	})
	d.registerSlice(SliceWorkload, func(ctx context.Context) error {
		workload, err := api.InstructorWorkloads(ctx)
		if err != nil {
			return err
		}
		d.Workload = workload
		return nil
	})
	d.setPrimary(SliceOverview)

	d.registerEffect(ActionTogglePublish, SliceAnalystCourses)

	return d
}

// BuildChart fetches a series for the current chart-builder inputs.
// Invalid inputs abort locally; a failed fetch is a read, so it leaves
// an empty series and emits no notification.
func (d *AnalystDashboard) BuildChart(ctx context.Context) error {
	fieldErrs := make(map[string]string)
	if !contains(models.GroupByOptions, d.GroupBy) {
		fieldErrs["group_by"] = "Select a valid grouping!"
	}
	if !contains(models.MetricOptions, d.Metric) {
		fieldErrs["metric"] = "Select a valid metric!"
	}
	if !contains(charts.Kinds, d.ChartType) {
		fieldErrs["chart_type"] = "Select a valid chart type!"
	}
	if len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}

	courseID := ""
	if d.Metric == models.MetricGradeDistribution {
		courseID = d.GradeCourseID
	}

	series, err := d.api.ChartBuilder(ctx, d.GroupBy, d.Metric, courseID)
	if err != nil {
		log.Printf("dashboard: chart builder fetch failed: %v", err)
		d.ChartSeries = nil
		return err
	}
	d.ChartSeries = series
	return nil
}

// ChartView prepares the last fetched series for rendering.
func (d *AnalystDashboard) ChartView() charts.View {
	return charts.Render(d.ChartType, d.Metric, d.ChartSeries)
}

// TogglePublish flips whether a course's analytics are visible to its
// students.
func (d *AnalystDashboard) TogglePublish(ctx context.Context, courseID string, published bool) error {
	successMsg := "Course analytics published"
	if !published {
		successMsg = "Course analytics unpublished"
	}
	return d.dispatch(ctx, ActionTogglePublish,
		successMsg, "Failed to update publish state",
		func(ctx context.Context) error { return d.api.SetCoursePublished(ctx, courseID, published) })
}

// RefreshKPIs re-fetches only the real-time KPI slice. Used by the
// periodic refresher.
func (d *AnalystDashboard) RefreshKPIs(ctx context.Context) {
	d.Refresh(ctx, SliceKPIs)
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
