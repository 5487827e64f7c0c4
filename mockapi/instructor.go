package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coursehub/models"
)

// InstructorCourses returns the taught courses with live enrollment
// counts.
func InstructorCourses(c *fiber.Ctx) error {
	instructorID := c.Query("instructor_id")
	if instructorID == "" {
		return JsonError(c, fiber.StatusBadRequest, "instructor_id is required")
	}

	var links []TeachesRow
	Database.Db.Where("instructor_id = ?", instructorID).Find(&links)

	courses := make([]models.InstructorCourse, 0, len(links))
	for _, link := range links {
		var course CourseRow
		if err := Database.Db.Where("course_id = ?", link.CourseID).First(&course).Error; err != nil {
			continue
		}
		var enrolled int64
		Database.Db.Model(&EnrollmentRow{}).
			Where("course_id = ? AND status != ?", link.CourseID, "dropped").
			Count(&enrolled)

		courses = append(courses, models.InstructorCourse{
			CourseID:      course.CourseID,
			Title:         course.Title,
			Duration:      course.Duration,
			Level:         course.Level,
			Description:   course.Description,
			EnrolledCount: int(enrolled),
		})
	}
	return JsonSuccess(c, fiber.Map{"courses": courses})
}

// CourseStudents returns the live roster of a taught course. Dropped
// students never appear.
func CourseStudents(c *fiber.Ctx) error {
	courseID := c.Params("id")
	instructorID := c.Query("instructor_id")
	if instructorID == "" {
		return JsonError(c, fiber.StatusBadRequest, "instructor_id is required")
	}
	if !teaches(instructorID, courseID) {
		return JsonError(c, fiber.StatusForbidden, "You don't teach this course")
	}

	var enrollments []EnrollmentRow
	Database.Db.Where("course_id = ? AND status != ?", courseID, "dropped").Find(&enrollments)

	students := make([]models.CourseStudent, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var user UserRow
		if err := Database.Db.Where("user_id = ?", enrollment.UserID).First(&user).Error; err != nil {
			continue
		}
		students = append(students, models.CourseStudent{
			UserID:         user.UserID,
			Name:           user.Name,
			Email:          user.Email,
			Status:         enrollment.Status,
			Grade:          enrollment.Grade,
			EnrollDate:     enrollment.EnrollDate,
			CompletionDate: enrollment.CompletionDate,
		})
	}
	return JsonSuccess(c, fiber.Map{"students": students})
}

// GradeStudent records a grade and status, stamping the completion date.
func GradeStudent(c *fiber.Ctx) error {
	var reqData models.GradeRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.InstructorID == "" || reqData.CourseID == "" || reqData.StudentID == "" || reqData.Grade == "" {
		return JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if !teaches(reqData.InstructorID, reqData.CourseID) {
		return JsonError(c, fiber.StatusForbidden, "You don't teach this course")
	}

	status := reqData.Status
	if status == "" {
		status = models.StatusCompleted
	}

	result := Database.Db.Model(&EnrollmentRow{}).
		Where("user_id = ? AND course_id = ?", reqData.StudentID, reqData.CourseID).
		Updates(map[string]interface{}{
			"grade":           reqData.Grade,
			"status":          status,
			"completion_date": today(),
		})
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to grade student")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "Student graded successfully"})
}

// RemoveStudentFromCourse marks the enrollment dropped; the row stays for
// history but leaves every roster.
func RemoveStudentFromCourse(c *fiber.Ctx) error {
	var reqData models.RemoveStudentRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.InstructorID == "" || reqData.CourseID == "" || reqData.StudentID == "" {
		return JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if !teaches(reqData.InstructorID, reqData.CourseID) {
		return JsonError(c, fiber.StatusForbidden, "You don't teach this course")
	}

	result := Database.Db.Model(&EnrollmentRow{}).
		Where("user_id = ? AND course_id = ?", reqData.StudentID, reqData.CourseID).
		Update("status", "dropped")
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to remove student")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "Student removed from course"})
}

// InstructorCourseModules returns a taught course's modules without
// content.
func InstructorCourseModules(c *fiber.Ctx) error {
	courseID := c.Params("id")
	instructorID := c.Query("instructor_id")
	if instructorID == "" {
		return JsonError(c, fiber.StatusBadRequest, "instructor_id is required")
	}
	if !teaches(instructorID, courseID) {
		return JsonError(c, fiber.StatusForbidden, "You don't teach this course")
	}

	var rows []ModuleRow
	Database.Db.Where("course_id = ?", courseID).Order("module_number").Find(&rows)

	modules := make([]models.Module, 0, len(rows))
	for _, row := range rows {
		modules = append(modules, models.Module{
			ModuleNumber: row.ModuleNumber,
			Name:         row.Name,
			Duration:     row.Duration,
		})
	}
	return JsonSuccess(c, fiber.Map{"modules": modules})
}

// CreateModule inserts a module; the number is unique per course.
func CreateModule(c *fiber.Ctx) error {
	var reqData models.CreateModuleRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.InstructorID == "" || reqData.CourseID == "" || reqData.ModuleNumber == 0 || reqData.Name == "" {
		return JsonError(c, fiber.StatusBadRequest, "instructor_id, course_id, module_number, and name are required")
	}
	if !teaches(reqData.InstructorID, reqData.CourseID) {
		return JsonError(c, fiber.StatusForbidden, "You don't teach this course")
	}

	var existing int64
	Database.Db.Model(&ModuleRow{}).
		Where("course_id = ? AND module_number = ?", reqData.CourseID, reqData.ModuleNumber).
		Count(&existing)
	if existing > 0 {
		return JsonError(c, fiber.StatusBadRequest, "Module number already exists for this course")
	}

	module := ModuleRow{
		CourseID:     reqData.CourseID,
		ModuleNumber: reqData.ModuleNumber,
		Name:         reqData.Name,
		Duration:     reqData.Duration,
	}
	if err := Database.Db.Create(&module).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to create module")
	}
	return JsonSuccess(c, fiber.Map{"message": "Module created successfully"})
}

// AddModuleContent attaches content to an existing module.
func AddModuleContent(c *fiber.Ctx) error {
	var reqData models.AddContentRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.InstructorID == "" || reqData.CourseID == "" || reqData.ModuleNumber == 0 ||
		reqData.Title == "" || reqData.Type == "" || reqData.URL == "" {
		return JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if !teaches(reqData.InstructorID, reqData.CourseID) {
		return JsonError(c, fiber.StatusForbidden, "You don't teach this course")
	}

	var moduleCount int64
	Database.Db.Model(&ModuleRow{}).
		Where("course_id = ? AND module_number = ?", reqData.CourseID, reqData.ModuleNumber).
		Count(&moduleCount)
	if moduleCount == 0 {
		return JsonError(c, fiber.StatusNotFound, "Module does not exist")
	}

	content := ContentRow{
		ContentID:    uuid.NewString(),
		CourseID:     reqData.CourseID,
		ModuleNumber: reqData.ModuleNumber,
		Title:        reqData.Title,
		Type:         reqData.Type,
		URL:          reqData.URL,
	}
	if err := Database.Db.Create(&content).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to add content")
	}
	return JsonSuccess(c, fiber.Map{
		"message":    "Content added successfully",
		"content_id": content.ContentID,
	})
}
