package main

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/models"
)

// Dashboard returns the role-specific summary counters.
func Dashboard(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	role := c.Query("role")
	if userID == "" || role == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id and role are required")
	}

	result := fiber.Map{}
	switch role {
	case models.RoleStudent:
		var enrolled, completed int64
		Database.Db.Model(&EnrollmentRow{}).
			Where("user_id = ? AND status != ?", userID, "dropped").Count(&enrolled)
		Database.Db.Model(&EnrollmentRow{}).
			Where("user_id = ? AND status = ?", userID, models.StatusCompleted).Count(&completed)
		result["enrolled_count"] = enrolled
		result["completed_count"] = completed

	case models.RoleInstructor:
		var taught int64
		Database.Db.Model(&TeachesRow{}).Where("instructor_id = ?", userID).Count(&taught)
		result["total_courses"] = taught

	case models.RoleAdmin:
		var users, courses int64
		Database.Db.Model(&UserRow{}).Count(&users)
		Database.Db.Model(&CourseRow{}).Count(&courses)
		result["total_users"] = users
		result["total_courses"] = courses

	case models.RoleAnalyst:
		var enrollments int64
		Database.Db.Model(&EnrollmentRow{}).Count(&enrollments)
		result["total_enrollments"] = enrollments

	default:
		return JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	return JsonSuccess(c, fiber.Map{"data": result})
}

// ListCourses returns the full catalog ordered by title.
func ListCourses(c *fiber.Ctx) error {
	var rows []CourseRow
	if err := Database.Db.Order("title").Find(&rows).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}

	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseToModel(row))
	}
	return JsonSuccess(c, fiber.Map{"courses": courses})
}

// Enroll creates an ongoing enrollment. Re-enrolling and unknown courses
// share one error so the frontend shows a single message.
func Enroll(c *fiber.Ctx) error {
	var reqData models.EnrollRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.UserID == "" || reqData.CourseID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id and course_id are required")
	}

	var courseCount int64
	Database.Db.Model(&CourseRow{}).Where("course_id = ?", reqData.CourseID).Count(&courseCount)

	var existing int64
	Database.Db.Model(&EnrollmentRow{}).
		Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).
		Count(&existing)

	if courseCount == 0 || existing > 0 {
		return JsonError(c, fiber.StatusBadRequest, "Already enrolled or invalid course")
	}

	enrollment := EnrollmentRow{
		UserID:     reqData.UserID,
		CourseID:   reqData.CourseID,
		Status:     models.StatusOngoing,
		EnrollDate: today(),
	}
	if err := Database.Db.Create(&enrollment).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to enroll")
	}

	return JsonSuccess(c, fiber.Map{"message": "Enrolled successfully"})
}

// MyCourses returns the caller's enrollments joined with course fields,
// optionally filtered by status.
func MyCourses(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}
	status := c.Query("status")

	query := Database.Db.Where("user_id = ? AND status != ?", userID, "dropped")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var enrollments []EnrollmentRow
	if err := query.Order("enroll_date DESC").Find(&enrollments).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to load enrollments")
	}

	courses := make([]models.EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course CourseRow
		if err := Database.Db.Where("course_id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}
		courses = append(courses, models.EnrolledCourse{
			CourseID:          course.CourseID,
			Title:             course.Title,
			Duration:          course.Duration,
			Level:             course.Level,
			UniversityName:    course.UniversityName,
			UniversityRanking: course.UniversityRanking,
			InstructorNames:   instructorNames(course.CourseID),
			Status:            enrollment.Status,
			Grade:             enrollment.Grade,
			EnrollDate:        enrollment.EnrollDate,
			CompletionDate:    enrollment.CompletionDate,
		})
	}
	return JsonSuccess(c, fiber.Map{"courses": courses})
}
