package courseValidator

import (
	"strconv"
	"strings"

	"coursehub/models"
)

// Form is the raw course create/edit buffer. Numeric fields are kept as
// strings until validation so the buffer can mirror text inputs exactly.
type Form struct {
	Title             string
	Duration          string
	Level             string
	Description       string
	Fees              string
	UniversityName    string
	UniversityRanking string
}

// FromCourse snapshots an existing course into an edit buffer.
func FromCourse(course models.Course) Form {
	f := Form{
		Title:          course.Title,
		Duration:       course.Duration,
		Level:          course.Level,
		Description:    course.Description,
		UniversityName: course.UniversityName,
	}
	if course.Fees != nil {
		f.Fees = strconv.FormatFloat(*course.Fees, 'f', -1, 64)
	}
	if course.UniversityRanking != nil {
		f.UniversityRanking = strconv.Itoa(*course.UniversityRanking)
	}
	return f
}

// Course validates a course form and coerces its numeric fields. On
// success the returned request is ready to send; otherwise the error map
// names every invalid field and nothing should be sent.
func Course(f Form) (*models.CreateCourseRequest, map[string]string) {
	errors := make(map[string]string)

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errors["title"] = "Title is required!"
	} else if len(title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	university := strings.TrimSpace(f.UniversityName)
	if university == "" {
		errors["university_name"] = "University name is required!"
	}

	level := strings.TrimSpace(f.Level)
	if level != "" && level != models.LevelBeginner && level != models.LevelIntermediate && level != models.LevelAdvanced {
		errors["level"] = "Level must be beginner, intermediate or advanced!"
	}

	req := &models.CreateCourseRequest{
		Title:          title,
		Duration:       strings.TrimSpace(f.Duration),
		Level:          level,
		Description:    strings.TrimSpace(f.Description),
		UniversityName: university,
	}

	if fees := strings.TrimSpace(f.Fees); fees != "" {
		value, err := strconv.ParseFloat(fees, 64)
		if err != nil || value < 0 {
			errors["fees"] = "Fees must be a non-negative number!"
		} else {
			req.Fees = &value
		}
	}

	if ranking := strings.TrimSpace(f.UniversityRanking); ranking != "" {
		value, err := strconv.Atoi(ranking)
		if err != nil || value < 1 {
			errors["university_ranking"] = "University ranking must be a positive integer!"
		} else {
			req.UniversityRanking = &value
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return req, nil
}
