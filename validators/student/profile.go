package studentValidator

import (
	"strings"
	"time"

	"coursehub/models"
)

// ProfileForm is the raw personal-information edit buffer.
type ProfileForm struct {
	Name        string
	Branch      string
	Country     string
	DOB         string
	PhoneNumber string
}

// FromProfile snapshots the current profile into an edit buffer.
func FromProfile(profile models.StudentProfile) ProfileForm {
	return ProfileForm{
		Name:        profile.Name,
		Branch:      profile.Branch,
		Country:     profile.Country,
		DOB:         profile.DOB,
		PhoneNumber: profile.PhoneNumber,
	}
}

// Profile validates a profile form. Email is not updatable and therefore
// not part of the form.
func Profile(userID string, f ProfileForm) (*models.UpdateProfileRequest, map[string]string) {
	errors := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errors["name"] = "Name is required!"
	}

	dob := strings.TrimSpace(f.DOB)
	if dob != "" {
		if _, err := time.Parse("2006-01-02", dob); err != nil {
			errors["dob"] = "Date of birth must be in YYYY-MM-DD format!"
		}
	}

	phone := strings.TrimSpace(f.PhoneNumber)
	if phone != "" && !validPhone(phone) {
		errors["phone_number"] = "Phone number may contain only digits, spaces, + and -!"
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &models.UpdateProfileRequest{
		UserID:      userID,
		Name:        strings.TrimSpace(f.Name),
		Branch:      strings.TrimSpace(f.Branch),
		Country:     strings.TrimSpace(f.Country),
		DOB:         dob,
		PhoneNumber: phone,
	}, nil
}

func validPhone(phone string) bool {
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case '+', '-', ' ', '(', ')':
		default:
			return false
		}
	}
	return true
}

// Submission validates an assignment solution URL.
func Submission(userID, assignmentID, url string) (*models.SubmitAssignmentRequest, map[string]string) {
	errors := make(map[string]string)

	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		errors["url"] = "Solution URL is required!"
	} else if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		errors["url"] = "Solution URL must start with http:// or https://!"
	}
	if strings.TrimSpace(assignmentID) == "" {
		errors["assignment_id"] = "Assignment is required!"
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &models.SubmitAssignmentRequest{
		UserID:       userID,
		AssignmentID: strings.TrimSpace(assignmentID),
		URL:          trimmed,
	}, nil
}
