package models

// Chart-builder grouping dimensions (X axis).
const (
	GroupByCourse     = "course_name"
	GroupByCountry    = "student_country"
	GroupByAgeGroup   = "student_age_group"
	GroupByInstructor = "instructor_name"
	GroupByUniversity = "university_name"
	GroupByBranch     = "student_branch"
)

// Chart-builder metrics (Y axis).
const (
	MetricEnrollments       = "total_enrollments"
	MetricRevenue           = "total_revenue"
	MetricAvgScore          = "avg_eval_score"
	MetricDuration          = "course_duration"
	MetricGradeDistribution = "grade_distribution"
)

// GroupByOptions and MetricOptions enumerate the valid chart-builder inputs.
var (
	GroupByOptions = []string{
		GroupByCourse, GroupByCountry, GroupByAgeGroup,
		GroupByInstructor, GroupByUniversity, GroupByBranch,
	}
	MetricOptions = []string{
		MetricEnrollments, MetricRevenue, MetricAvgScore,
		MetricDuration, MetricGradeDistribution,
	}
)

// ChartPoint is one pre-aggregated series point. The backend computes all
// aggregation; the frontend only renders these pairs.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// KPIs are the analyst real-time headline numbers.
type KPIs struct {
	TotalRevenue            float64 `json:"total_revenue"`
	LiveEnrollmentCount     int     `json:"live_enrollment_count"`
	CompletionRate          float64 `json:"completion_rate"`
	TopPerformingUniversity string  `json:"top_performing_university"`
}

// AnalystOverview is the analyst dashboard summary.
type AnalystOverview struct {
	TotalEnrollments int `json:"total_enrollments"`
	TotalStudents    int `json:"total_students"`
	TotalCourses     int `json:"total_courses"`
}

// AnalystCourse is a per-course analytics row.
type AnalystCourse struct {
	CourseID        string  `json:"course_id"`
	Title           string  `json:"title"`
	Level           string  `json:"level"`
	Duration        string  `json:"duration"`
	Enrolled        int     `json:"enrolled"`
	Completed       int     `json:"completed"`
	CompletionRate  float64 `json:"completion_rate"`
	AssignmentCount int     `json:"assignment_count"`
	Published       bool    `json:"published"`
}

// LevelCount, RoleCount and CourseEnrollments back the pre-built insights.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type CourseEnrollments struct {
	Title       string `json:"title"`
	Enrollments int    `json:"enrollments"`
}

// Insights groups the pre-built insight tables.
type Insights struct {
	EnrollmentsByLevel     []LevelCount        `json:"enrollments_by_level"`
	UsersByRole            []RoleCount         `json:"users_by_role"`
	TopCoursesByEnrollment []CourseEnrollments `json:"top_courses_by_enrollment"`
}

// GeoPoint is a students-per-country pie slice.
type GeoPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AgePoint is a students-per-age-group bar.
type AgePoint struct {
	AgeGroup string `json:"age_group"`
	Count    int    `json:"count"`
}

// HotTopic is a top-courses-by-enrollment bar.
type HotTopic struct {
	Title       string `json:"title"`
	Enrollments int    `json:"enrollments"`
}

// InstructorWorkload is a courses-per-instructor bar.
type InstructorWorkload struct {
	Name        string `json:"name"`
	CourseCount int    `json:"course_count"`
}

// GradeCount is one bucket of a grade distribution.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// CourseAnalytics is the per-course insight block shown to students when
// the analyst has published it.
type CourseAnalytics struct {
	Enrolled          int          `json:"enrolled"`
	Completed         int          `json:"completed"`
	CompletionRate    float64      `json:"completion_rate"`
	GradeDistribution []GradeCount `json:"grade_distribution"`
}
