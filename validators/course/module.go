package courseValidator

import (
	"strconv"
	"strings"

	"coursehub/models"
)

// ModuleForm is the raw create-module buffer.
type ModuleForm struct {
	CourseID     string
	ModuleNumber string
	Name         string
	Duration     string
}

// Module validates a module form. The module number must coerce to a
// positive integer; uniqueness per course is enforced by the backend.
func Module(instructorID string, f ModuleForm) (*models.CreateModuleRequest, map[string]string) {
	errors := make(map[string]string)

	if strings.TrimSpace(f.CourseID) == "" {
		errors["course_id"] = "Course is required!"
	}

	number := 0
	if raw := strings.TrimSpace(f.ModuleNumber); raw == "" {
		errors["module_number"] = "Module number is required!"
	} else {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			errors["module_number"] = "Module number must be a positive integer!"
		} else {
			number = value
		}
	}

	if strings.TrimSpace(f.Name) == "" {
		errors["name"] = "Module name is required!"
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &models.CreateModuleRequest{
		InstructorID: instructorID,
		CourseID:     strings.TrimSpace(f.CourseID),
		ModuleNumber: number,
		Name:         strings.TrimSpace(f.Name),
		Duration:     strings.TrimSpace(f.Duration),
	}, nil
}

// ContentForm is the raw add-content buffer.
type ContentForm struct {
	CourseID     string
	ModuleNumber string
	Title        string
	Type         string
	URL          string
}

// Content validates an add-content form.
func Content(instructorID string, f ContentForm) (*models.AddContentRequest, map[string]string) {
	errors := make(map[string]string)

	if strings.TrimSpace(f.CourseID) == "" {
		errors["course_id"] = "Course is required!"
	}

	number := 0
	if raw := strings.TrimSpace(f.ModuleNumber); raw == "" {
		errors["module_number"] = "Module is required!"
	} else {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			errors["module_number"] = "Module number must be a positive integer!"
		} else {
			number = value
		}
	}

	if strings.TrimSpace(f.Title) == "" {
		errors["title"] = "Content title is required!"
	}

	contentType := strings.TrimSpace(f.Type)
	validType := false
	for _, t := range models.ContentTypes {
		if contentType == t {
			validType = true
			break
		}
	}
	if !validType {
		errors["type"] = "Content type must be video, document, quiz or assignment!"
	}

	url := strings.TrimSpace(f.URL)
	if url == "" {
		errors["url"] = "Content URL is required!"
	} else if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		errors["url"] = "Content URL must start with http:// or https://!"
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &models.AddContentRequest{
		InstructorID: instructorID,
		CourseID:     strings.TrimSpace(f.CourseID),
		ModuleNumber: number,
		Title:        strings.TrimSpace(f.Title),
		Type:         contentType,
		URL:          url,
	}, nil
}
