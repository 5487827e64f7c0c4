package main

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coursehub/models"
)

// GetStudentProfile returns the joined account and profile record.
func GetStudentProfile(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}

	var user UserRow
	if err := Database.Db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	var student StudentRow
	if err := Database.Db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return JsonSuccess(c, fiber.Map{
		"profile": models.StudentProfile{
			UserID:      user.UserID,
			Name:        user.Name,
			Email:       user.Email,
			Branch:      student.Branch,
			Country:     student.Country,
			DOB:         student.DOB,
			PhoneNumber: student.PhoneNumber,
		},
	})
}

// UpdateStudentProfile updates name and profile fields. Email is not
// updatable.
func UpdateStudentProfile(c *fiber.Ctx) error {
	var reqData models.UpdateProfileRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.UserID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}

	var student StudentRow
	if err := Database.Db.Where("user_id = ?", reqData.UserID).First(&student).Error; err != nil {
		return JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	if reqData.Name != "" {
		Database.Db.Model(&UserRow{}).
			Where("user_id = ?", reqData.UserID).
			Update("name", reqData.Name)
	}
	Database.Db.Model(&StudentRow{}).Where("user_id = ?", reqData.UserID).Updates(map[string]interface{}{
		"branch":       reqData.Branch,
		"country":      reqData.Country,
		"dob":          reqData.DOB,
		"phone_number": reqData.PhoneNumber,
	})

	return JsonSuccess(c, fiber.Map{"message": "Profile updated successfully"})
}

// StudentCourseModules returns modules with content inline. The caller
// must hold a live enrollment.
func StudentCourseModules(c *fiber.Ctx) error {
	courseID := c.Params("id")
	userID := c.Query("user_id")
	if userID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}
	if !enrolledIn(userID, courseID) {
		return JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var moduleRows []ModuleRow
	Database.Db.Where("course_id = ?", courseID).Order("module_number").Find(&moduleRows)

	modules := make([]models.Module, 0, len(moduleRows))
	for _, row := range moduleRows {
		var contentRows []ContentRow
		Database.Db.Where("course_id = ? AND module_number = ?", courseID, row.ModuleNumber).
			Order("content_id").Find(&contentRows)

		content := make([]models.Content, 0, len(contentRows))
		for _, item := range contentRows {
			content = append(content, models.Content{
				ContentID: item.ContentID,
				Title:     item.Title,
				Type:      item.Type,
				URL:       item.URL,
			})
		}
		modules = append(modules, models.Module{
			ModuleNumber: row.ModuleNumber,
			Name:         row.Name,
			Duration:     row.Duration,
			Content:      content,
		})
	}
	return JsonSuccess(c, fiber.Map{"modules": modules})
}

// StudentCourseAssignments returns assignments with the caller's
// submission state merged in.
func StudentCourseAssignments(c *fiber.Ctx) error {
	courseID := c.Params("id")
	userID := c.Query("user_id")
	if userID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}
	if !enrolledIn(userID, courseID) {
		return JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var assignmentRows []AssignmentRow
	Database.Db.Where("course_id = ?", courseID).Order("due_date").Find(&assignmentRows)

	assignments := make([]models.Assignment, 0, len(assignmentRows))
	for _, row := range assignmentRows {
		assignment := models.Assignment{
			AssignmentID:  row.AssignmentID,
			CourseID:      row.CourseID,
			Title:         row.Title,
			Description:   row.Description,
			AssignmentURL: row.AssignmentURL,
			MaxMarks:      row.MaxMarks,
			DueDate:       row.DueDate,
		}

		var submission SubmissionRow
		if err := Database.Db.Where("assignment_id = ? AND user_id = ?", row.AssignmentID, userID).
			First(&submission).Error; err == nil {
			url := submission.SubmissionURL
			submittedAt := submission.SubmittedAt
			assignment.SubmissionURL = &url
			assignment.SubmittedAt = &submittedAt
			assignment.MarksObtained = submission.MarksObtained
			assignment.Feedback = submission.Feedback
		}
		assignments = append(assignments, assignment)
	}
	return JsonSuccess(c, fiber.Map{"assignments": assignments})
}

// StudentCourseAnnouncements returns course announcements newest first.
func StudentCourseAnnouncements(c *fiber.Ctx) error {
	courseID := c.Params("id")
	userID := c.Query("user_id")
	if userID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}
	if !enrolledIn(userID, courseID) {
		return JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var rows []AnnouncementRow
	Database.Db.Where("course_id = ?", courseID).Order("posted_at DESC").Find(&rows)

	announcements := make([]models.Announcement, 0, len(rows))
	for _, row := range rows {
		announcements = append(announcements, models.Announcement{
			AnnouncementID: row.AnnouncementID,
			Title:          row.Title,
			Body:           row.Body,
			PostedAt:       row.PostedAt,
		})
	}
	return JsonSuccess(c, fiber.Map{"announcements": announcements})
}

// StudentCourseAnalytics returns the per-course insight block, gated on
// the analyst's publish switch.
func StudentCourseAnalytics(c *fiber.Ctx) error {
	courseID := c.Params("id")
	userID := c.Query("user_id")
	if userID == "" {
		return JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}
	if !enrolledIn(userID, courseID) {
		return JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var course CourseRow
	if err := Database.Db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	if !course.Published {
		return JsonSuccess(c, fiber.Map{"published": false})
	}

	return JsonSuccess(c, fiber.Map{
		"published": true,
		"data":      courseAnalytics(courseID),
	})
}

// SubmitAssignment records a solution URL once per assignment.
func SubmitAssignment(c *fiber.Ctx) error {
	var reqData models.SubmitAssignmentRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.UserID == "" || reqData.AssignmentID == "" || reqData.URL == "" {
		return JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	var assignment AssignmentRow
	if err := Database.Db.Where("assignment_id = ?", reqData.AssignmentID).First(&assignment).Error; err != nil {
		return JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if !enrolledIn(reqData.UserID, assignment.CourseID) {
		return JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var existing int64
	Database.Db.Model(&SubmissionRow{}).
		Where("assignment_id = ? AND user_id = ?", reqData.AssignmentID, reqData.UserID).
		Count(&existing)
	if existing > 0 {
		return JsonError(c, fiber.StatusBadRequest, "Assignment already submitted")
	}

	submission := SubmissionRow{
		AssignmentID:  reqData.AssignmentID,
		UserID:        reqData.UserID,
		SubmissionURL: reqData.URL,
		SubmittedAt:   time.Now().Format(time.RFC3339),
	}
	if err := Database.Db.Create(&submission).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to submit assignment")
	}

	return JsonSuccess(c, fiber.Map{"message": "Submission successful"})
}
