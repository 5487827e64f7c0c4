package main

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"coursehub/models"
)

// liveEnrollments returns every non-dropped enrollment.
func liveEnrollments() []EnrollmentRow {
	var rows []EnrollmentRow
	Database.Db.Where("status != ?", "dropped").Find(&rows)
	return rows
}

// courseAnalytics builds the per-course insight block shared by the
// analyst table and the student-facing published view.
func courseAnalytics(courseID string) models.CourseAnalytics {
	var enrolled, completed int64
	Database.Db.Model(&EnrollmentRow{}).
		Where("course_id = ? AND status != ?", courseID, "dropped").Count(&enrolled)
	Database.Db.Model(&EnrollmentRow{}).
		Where("course_id = ? AND status = ?", courseID, models.StatusCompleted).Count(&completed)

	rate := 0.0
	if enrolled > 0 {
		rate = float64(completed) / float64(enrolled) * 100
	}

	var graded []EnrollmentRow
	Database.Db.Where("course_id = ? AND status != ? AND grade != ?", courseID, "dropped", "").Find(&graded)

	buckets := make(map[string]int)
	for _, enrollment := range graded {
		buckets[enrollment.Grade]++
	}
	grades := make([]string, 0, len(buckets))
	for grade := range buckets {
		grades = append(grades, grade)
	}
	sort.Strings(grades)

	distribution := make([]models.GradeCount, 0, len(grades))
	for _, grade := range grades {
		distribution = append(distribution, models.GradeCount{Grade: grade, Count: buckets[grade]})
	}

	return models.CourseAnalytics{
		Enrolled:          int(enrolled),
		Completed:         int(completed),
		CompletionRate:    rate,
		GradeDistribution: distribution,
	}
}

// AnalystOverview returns the headline counters.
func AnalystOverview(c *fiber.Ctx) error {
	var enrollments, students, courses int64
	Database.Db.Model(&EnrollmentRow{}).Where("status != ?", "dropped").Count(&enrollments)
	Database.Db.Model(&StudentRow{}).Count(&students)
	Database.Db.Model(&CourseRow{}).Count(&courses)

	return JsonSuccess(c, fiber.Map{
		"data": models.AnalystOverview{
			TotalEnrollments: int(enrollments),
			TotalStudents:    int(students),
			TotalCourses:     int(courses),
		},
	})
}

// AnalystCourses returns one analytics row per course, including the
// publish state.
func AnalystCourses(c *fiber.Ctx) error {
	var rows []CourseRow
	Database.Db.Order("title").Find(&rows)

	courses := make([]models.AnalystCourse, 0, len(rows))
	for _, row := range rows {
		analytics := courseAnalytics(row.CourseID)

		var assignments int64
		Database.Db.Model(&AssignmentRow{}).Where("course_id = ?", row.CourseID).Count(&assignments)

		courses = append(courses, models.AnalystCourse{
			CourseID:        row.CourseID,
			Title:           row.Title,
			Level:           row.Level,
			Duration:        row.Duration,
			Enrolled:        analytics.Enrolled,
			Completed:       analytics.Completed,
			CompletionRate:  analytics.CompletionRate,
			AssignmentCount: int(assignments),
			Published:       row.Published,
		})
	}
	return JsonSuccess(c, fiber.Map{"courses": courses})
}

// AnalystInsights returns the pre-built insight tables.
func AnalystInsights(c *fiber.Ctx) error {
	var levelCounts []models.LevelCount
	Database.Db.Model(&EnrollmentRow{}).
		Select("courses.level AS level, COUNT(*) AS count").
		Joins("JOIN courses ON courses.course_id = enrolled_in.course_id").
		Where("enrolled_in.status != ?", "dropped").
		Group("courses.level").
		Order("count DESC").
		Scan(&levelCounts)

	var roleCounts []models.RoleCount
	Database.Db.Model(&UserRow{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("count DESC").
		Scan(&roleCounts)

	var topCourses []models.CourseEnrollments
	Database.Db.Model(&EnrollmentRow{}).
		Select("courses.title AS title, COUNT(*) AS enrollments").
		Joins("JOIN courses ON courses.course_id = enrolled_in.course_id").
		Where("enrolled_in.status != ?", "dropped").
		Group("courses.title").
		Order("enrollments DESC").
		Limit(5).
		Scan(&topCourses)

	return JsonSuccess(c, fiber.Map{
		"insights": models.Insights{
			EnrollmentsByLevel:     levelCounts,
			UsersByRole:            roleCounts,
			TopCoursesByEnrollment: topCourses,
		},
	})
}

// AnalystKPIs returns the real-time KPI numbers.
func AnalystKPIs(c *fiber.Ctx) error {
	enrollments := liveEnrollments()

	revenue := 0.0
	live := 0
	completed := 0
	universityCompletions := make(map[string]int)
	for _, enrollment := range enrollments {
		var course CourseRow
		if err := Database.Db.Where("course_id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}
		if course.Fees != nil {
			revenue += *course.Fees
		}
		if enrollment.Status == models.StatusOngoing {
			live++
		}
		if enrollment.Status == models.StatusCompleted {
			completed++
			universityCompletions[course.UniversityName]++
		}
	}

	rate := 0.0
	if len(enrollments) > 0 {
		rate = float64(completed) / float64(len(enrollments)) * 100
	}

	topUniversity := ""
	best := -1
	for name, count := range universityCompletions {
		if count > best || (count == best && name < topUniversity) {
			topUniversity = name
			best = count
		}
	}

	return JsonSuccess(c, fiber.Map{
		"data": models.KPIs{
			TotalRevenue:            revenue,
			LiveEnrollmentCount:     live,
			CompletionRate:          rate,
			TopPerformingUniversity: topUniversity,
		},
	})
}

// AnalystGeographic returns the students-per-country distribution.
func AnalystGeographic(c *fiber.Ctx) error {
	var points []models.GeoPoint
	Database.Db.Model(&StudentRow{}).
		Select("country AS name, COUNT(*) AS value").
		Where("country != ?", "").
		Group("country").
		Order("value DESC").
		Scan(&points)
	return JsonSuccess(c, fiber.Map{"data": points})
}

// AnalystAgeDemographics buckets students by age group.
func AnalystAgeDemographics(c *fiber.Ctx) error {
	var students []StudentRow
	Database.Db.Find(&students)

	buckets := make(map[string]int)
	for _, student := range students {
		buckets[ageGroup(student.DOB)]++
	}

	order := []string{"<18", "18-24", "25-34", "35-44", "45+", "Unknown"}
	points := make([]models.AgePoint, 0, len(order))
	for _, group := range order {
		if count, ok := buckets[group]; ok {
			points = append(points, models.AgePoint{AgeGroup: group, Count: count})
		}
	}
	return JsonSuccess(c, fiber.Map{"data": points})
}

// AnalystHotTopics returns the top five courses by live enrollment.
func AnalystHotTopics(c *fiber.Ctx) error {
	var topics []models.HotTopic
	Database.Db.Model(&EnrollmentRow{}).
		Select("courses.title AS title, COUNT(*) AS enrollments").
		Joins("JOIN courses ON courses.course_id = enrolled_in.course_id").
		Where("enrolled_in.status != ?", "dropped").
		Group("courses.title").
		Order("enrollments DESC").
		Limit(5).
		Scan(&topics)
	return JsonSuccess(c, fiber.Map{"data": topics})
}

// AnalystInstructorWorkload returns courses-per-instructor counts.
func AnalystInstructorWorkload(c *fiber.Ctx) error {
	var workload []models.InstructorWorkload
	Database.Db.Model(&TeachesRow{}).
		Select("users.name AS name, COUNT(*) AS course_count").
		Joins("JOIN users ON users.user_id = teaches.instructor_id").
		Group("users.name").
		Order("course_count DESC").
		Scan(&workload)
	return JsonSuccess(c, fiber.Map{"data": workload})
}

// SetCoursePublished toggles student-facing analytics for a course.
func SetCoursePublished(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var reqData struct {
		Published bool `json:"published"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := Database.Db.Model(&CourseRow{}).
		Where("course_id = ?", courseID).
		Update("published", reqData.Published)
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to update publish state")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "Publish state updated"})
}
