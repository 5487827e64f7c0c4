package main

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"coursehub/models"
)

// ChartBuilder aggregates one series server-side for the analyst chart
// builder. The frontend never aggregates; it renders label/value pairs
// as returned here.
func ChartBuilder(c *fiber.Ctx) error {
	groupBy := c.Query("groupBy")
	metric := c.Query("metric")
	courseID := c.Query("courseId")

	if !validOption(models.GroupByOptions, groupBy) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid groupBy")
	}
	if !validOption(models.MetricOptions, metric) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid metric")
	}

	if metric == models.MetricGradeDistribution {
		return JsonSuccess(c, fiber.Map{"data": gradeDistributionSeries(courseID)})
	}
	return JsonSuccess(c, fiber.Map{"data": groupedSeries(groupBy, metric)})
}

func validOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// gradeDistributionSeries counts grades, across the platform or within
// one course.
func gradeDistributionSeries(courseID string) []models.ChartPoint {
	query := Database.Db.Where("status != ? AND grade != ?", "dropped", "")
	if courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	var enrollments []EnrollmentRow
	query.Find(&enrollments)

	buckets := make(map[string]float64)
	for _, enrollment := range enrollments {
		buckets[enrollment.Grade]++
	}
	return sortedSeries(buckets, true)
}

// groupedSeries walks every live enrollment once, resolving the grouping
// label and accumulating the metric per label.
func groupedSeries(groupBy, metric string) []models.ChartPoint {
	sums := make(map[string]float64)
	counts := make(map[string]float64)

	for _, enrollment := range liveEnrollments() {
		var course CourseRow
		if err := Database.Db.Where("course_id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}

		label := groupLabel(groupBy, enrollment, course)
		if label == "" {
			continue
		}

		switch metric {
		case models.MetricEnrollments:
			sums[label]++
		case models.MetricRevenue:
			if course.Fees != nil {
				sums[label] += *course.Fees
			}
		case models.MetricAvgScore:
			if score, ok := evalScore(enrollment); ok {
				sums[label] += score
				counts[label]++
			}
		case models.MetricDuration:
			sums[label] += durationHours(course.Duration)
			counts[label]++
		}
	}

	if metric == models.MetricAvgScore || metric == models.MetricDuration {
		for label := range sums {
			if counts[label] > 0 {
				sums[label] /= counts[label]
			}
		}
	}
	return sortedSeries(sums, metric != models.MetricAvgScore && metric != models.MetricDuration)
}

// groupLabel resolves an enrollment's grouping dimension.
func groupLabel(groupBy string, enrollment EnrollmentRow, course CourseRow) string {
	switch groupBy {
	case models.GroupByCourse:
		return course.Title
	case models.GroupByUniversity:
		return course.UniversityName
	case models.GroupByInstructor:
		names := instructorNames(course.CourseID)
		if names == "" {
			return ""
		}
		return strings.SplitN(names, ", ", 2)[0]
	case models.GroupByCountry, models.GroupByAgeGroup, models.GroupByBranch:
		var student StudentRow
		if err := Database.Db.Where("user_id = ?", enrollment.UserID).First(&student).Error; err != nil {
			return ""
		}
		switch groupBy {
		case models.GroupByCountry:
			return student.Country
		case models.GroupByAgeGroup:
			return ageGroup(student.DOB)
		default:
			return student.Branch
		}
	}
	return ""
}

// evalScore averages the student's graded submission percentages in the
// enrollment's course.
func evalScore(enrollment EnrollmentRow) (float64, bool) {
	var submissions []SubmissionRow
	Database.Db.Model(&SubmissionRow{}).
		Joins("JOIN assignments ON assignments.assignment_id = submissions.assignment_id").
		Where("submissions.user_id = ? AND assignments.course_id = ?", enrollment.UserID, enrollment.CourseID).
		Where("submissions.marks_obtained IS NOT NULL").
		Find(&submissions)

	total := 0.0
	graded := 0.0
	for _, submission := range submissions {
		var assignment AssignmentRow
		if err := Database.Db.Where("assignment_id = ?", submission.AssignmentID).First(&assignment).Error; err != nil {
			continue
		}
		if submission.MarksObtained == nil || assignment.MaxMarks == 0 {
			continue
		}
		total += *submission.MarksObtained / assignment.MaxMarks * 100
		graded++
	}
	if graded == 0 {
		return 0, false
	}
	return total / graded, true
}

// sortedSeries orders a bucket map by value descending (or label
// ascending for averaged metrics, where magnitude ordering is noise).
func sortedSeries(buckets map[string]float64, byValue bool) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(buckets))
	for label, value := range buckets {
		points = append(points, models.ChartPoint{Label: label, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		if byValue && points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
	return points
}
