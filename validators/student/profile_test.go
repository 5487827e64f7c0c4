package studentValidator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/models"
)

func TestProfileValid(t *testing.T) {
	form := ProfileForm{
		Name:        "Lena Fischer",
		Branch:      "Computer Science",
		Country:     "Germany",
		DOB:         "2001-04-12",
		PhoneNumber: "+49 151 2223344",
	}

	req, errs := Profile("u-1", form)

	assert.Nil(t, errs)
	assert.Equal(t, "u-1", req.UserID)
	assert.Equal(t, "Lena Fischer", req.Name)
}

func TestProfileRequiresName(t *testing.T) {
	req, errs := Profile("u-1", ProfileForm{})

	assert.Nil(t, req)
	assert.Equal(t, "Name is required!", errs["name"])
}

func TestProfileRejectsBadDOB(t *testing.T) {
	_, errs := Profile("u-1", ProfileForm{Name: "Lena", DOB: "12.04.2001"})
	assert.Contains(t, errs, "dob")
}

func TestProfileRejectsBadPhone(t *testing.T) {
	_, errs := Profile("u-1", ProfileForm{Name: "Lena", PhoneNumber: "call me"})
	assert.Contains(t, errs, "phone_number")
}

func TestFromProfileSnapshot(t *testing.T) {
	profile := models.StudentProfile{
		Name:        "Lena Fischer",
		Branch:      "CS",
		Country:     "Germany",
		DOB:         "2001-04-12",
		PhoneNumber: "+49 151 2223344",
	}

	form := FromProfile(profile)

	assert.Equal(t, profile.Name, form.Name)
	assert.Equal(t, profile.DOB, form.DOB)
}

func TestSubmissionRequiresHTTPURL(t *testing.T) {
	_, errs := Submission("u-1", "a-1", "github.com/lena/solution")
	assert.Contains(t, errs, "url")

	_, errs = Submission("u-1", "a-1", "")
	assert.Contains(t, errs, "url")

	req, errs := Submission("u-1", "a-1", "https://github.com/lena/solution")
	assert.Nil(t, errs)
	assert.Equal(t, "a-1", req.AssignmentID)
}
