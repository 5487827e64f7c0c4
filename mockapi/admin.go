package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coursehub/models"
)

// ListUsers returns every user with approval state.
func ListUsers(c *fiber.Ctx) error {
	var rows []UserRow
	if err := Database.Db.Order("name").Find(&rows).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, models.User{
			UserID:   row.UserID,
			Name:     row.Name,
			Email:    row.Email,
			Role:     row.Role,
			Approved: row.Approved,
		})
	}
	return JsonSuccess(c, fiber.Map{"users": users})
}

// ApproveUser flips the pending flag.
func ApproveUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	result := Database.Db.Model(&UserRow{}).Where("user_id = ?", userID).Update("approved", true)
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to approve user")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "User approved"})
}

// DeleteUser removes the account and its role rows.
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	Database.Db.Where("user_id = ?", userID).Delete(&StudentRow{})
	Database.Db.Where("user_id = ?", userID).Delete(&InstructorRow{})
	Database.Db.Where("instructor_id = ?", userID).Delete(&TeachesRow{})
	Database.Db.Where("user_id = ?", userID).Delete(&EnrollmentRow{})

	result := Database.Db.Where("user_id = ?", userID).Delete(&UserRow{})
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "User deleted"})
}

// ListInstructors returns the instructor directory.
func ListInstructors(c *fiber.Ctx) error {
	var rows []InstructorRow
	if err := Database.Db.Find(&rows).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to load instructors")
	}

	instructors := make([]models.Instructor, 0, len(rows))
	for _, row := range rows {
		var user UserRow
		if err := Database.Db.Where("user_id = ?", row.UserID).First(&user).Error; err != nil {
			continue
		}
		branch := row.Branch
		if branch == "" {
			branch = "N/A"
		}
		phone := row.PhoneNumber
		if phone == "" {
			phone = "N/A"
		}
		instructors = append(instructors, models.Instructor{
			UserID:      row.UserID,
			Name:        user.Name,
			Email:       user.Email,
			Branch:      branch,
			PhoneNumber: phone,
		})
	}
	return JsonSuccess(c, fiber.Map{"instructors": instructors})
}

// AdminCourses is the admin catalog view, identical to the public one.
func AdminCourses(c *fiber.Ctx) error {
	return ListCourses(c)
}

// CreateCourse inserts a catalog record.
func CreateCourse(c *fiber.Ctx) error {
	var reqData models.CreateCourseRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.Title == "" || reqData.UniversityName == "" {
		return JsonError(c, fiber.StatusBadRequest, "title and university_name are required")
	}

	course := CourseRow{
		CourseID:          uuid.NewString(),
		Title:             reqData.Title,
		Duration:          reqData.Duration,
		Level:             reqData.Level,
		Description:       reqData.Description,
		Fees:              reqData.Fees,
		UniversityName:    reqData.UniversityName,
		UniversityRanking: reqData.UniversityRanking,
	}
	if err := Database.Db.Create(&course).Error; err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return JsonSuccess(c, fiber.Map{"message": "Course created", "course_id": course.CourseID})
}

// UpdateCourse overwrites the catalog fields of a course.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var reqData models.CreateCourseRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := Database.Db.Model(&CourseRow{}).Where("course_id = ?", courseID).Updates(map[string]interface{}{
		"title":              reqData.Title,
		"duration":           reqData.Duration,
		"level":              reqData.Level,
		"description":        reqData.Description,
		"fees":               reqData.Fees,
		"university_name":    reqData.UniversityName,
		"university_ranking": reqData.UniversityRanking,
	})
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "Course updated"})
}

// DeleteCourse removes a course and everything hanging off it.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	Database.Db.Where("course_id = ?", courseID).Delete(&TeachesRow{})
	Database.Db.Where("course_id = ?", courseID).Delete(&EnrollmentRow{})
	Database.Db.Where("course_id = ?", courseID).Delete(&ModuleRow{})
	Database.Db.Where("course_id = ?", courseID).Delete(&ContentRow{})
	Database.Db.Where("course_id = ?", courseID).Delete(&AssignmentRow{})
	Database.Db.Where("course_id = ?", courseID).Delete(&AnnouncementRow{})

	result := Database.Db.Where("course_id = ?", courseID).Delete(&CourseRow{})
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return JsonSuccess(c, fiber.Map{"message": "Course deleted"})
}

// AssignInstructor links an instructor to a course; re-linking is a
// silent no-op like the original upsert.
func AssignInstructor(c *fiber.Ctx) error {
	var reqData models.AssignInstructorRequest
	if err := c.BodyParser(&reqData); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.InstructorID == "" || reqData.CourseID == "" {
		return JsonError(c, fiber.StatusBadRequest, "instructor_id and course_id are required")
	}

	if !teaches(reqData.InstructorID, reqData.CourseID) {
		link := TeachesRow{InstructorID: reqData.InstructorID, CourseID: reqData.CourseID}
		if err := Database.Db.Create(&link).Error; err != nil {
			return JsonError(c, fiber.StatusInternalServerError, "Failed to assign instructor")
		}
	}
	return JsonSuccess(c, fiber.Map{"message": "Instructor assigned"})
}

// RemoveInstructor unlinks an instructor from a course.
func RemoveInstructor(c *fiber.Ctx) error {
	courseID := c.Params("id")
	instructorID := c.Params("iid")

	result := Database.Db.
		Where("instructor_id = ? AND course_id = ?", instructorID, courseID).
		Delete(&TeachesRow{})
	if result.Error != nil {
		return JsonError(c, fiber.StatusInternalServerError, "Failed to remove instructor")
	}
	if result.RowsAffected == 0 {
		return JsonError(c, fiber.StatusNotFound, "Instructor is not assigned to this course")
	}
	return JsonSuccess(c, fiber.Map{"message": "Instructor removed"})
}
