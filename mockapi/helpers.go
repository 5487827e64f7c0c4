package main

import (
	"strconv"
	"strings"
	"time"

	"coursehub/models"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// instructorNames builds the derived display string for a course.
func instructorNames(courseID string) string {
	var names []string
	Database.Db.Model(&TeachesRow{}).
		Select("users.name").
		Joins("JOIN users ON users.user_id = teaches.instructor_id").
		Where("teaches.course_id = ?", courseID).
		Order("users.name").
		Scan(&names)
	return strings.Join(names, ", ")
}

func courseToModel(row CourseRow) models.Course {
	return models.Course{
		CourseID:          row.CourseID,
		Title:             row.Title,
		Duration:          row.Duration,
		Level:             row.Level,
		Description:       row.Description,
		Fees:              row.Fees,
		UniversityName:    row.UniversityName,
		UniversityRanking: row.UniversityRanking,
		InstructorNames:   instructorNames(row.CourseID),
	}
}

// teaches reports whether the instructor is linked to the course.
func teaches(instructorID, courseID string) bool {
	var count int64
	Database.Db.Model(&TeachesRow{}).
		Where("instructor_id = ? AND course_id = ?", instructorID, courseID).
		Count(&count)
	return count > 0
}

// enrolledIn reports whether the student has a live enrollment.
func enrolledIn(userID, courseID string) bool {
	var count int64
	Database.Db.Model(&EnrollmentRow{}).
		Where("user_id = ? AND course_id = ? AND status != ?", userID, courseID, "dropped").
		Count(&count)
	return count > 0
}

// ageGroup buckets a date of birth the way the demographics chart does.
func ageGroup(dob string) string {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return "Unknown"
	}
	age := int(time.Since(born).Hours() / 24 / 365.25)
	switch {
	case age < 18:
		return "<18"
	case age <= 24:
		return "18-24"
	case age <= 34:
		return "25-34"
	case age <= 44:
		return "35-44"
	default:
		return "45+"
	}
}

// durationHours extracts the leading number from a duration string like
// "8 weeks" or "40 hours"; zero when there is none.
func durationHours(duration string) float64 {
	fields := strings.Fields(strings.TrimSpace(duration))
	if len(fields) == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return value
}
