package courseValidator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/models"
)

func TestCourseCoercesNumericFields(t *testing.T) {
	form := Form{
		Title:             "Distributed Systems",
		Level:             "advanced",
		Fees:              "49.99",
		UniversityName:    "TU Berlin",
		UniversityRanking: "87",
	}

	req, errs := Course(form)

	assert.Nil(t, errs)
	assert.NotNil(t, req.Fees)
	assert.Equal(t, 49.99, *req.Fees)
	assert.NotNil(t, req.UniversityRanking)
	assert.Equal(t, 87, *req.UniversityRanking)
}

func TestCourseRequiredFields(t *testing.T) {
	req, errs := Course(Form{})

	assert.Nil(t, req)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "university_name")
}

func TestCourseRejectsBadNumbers(t *testing.T) {
	form := Form{
		Title:             "Databases",
		UniversityName:    "University of Tokyo",
		Fees:              "free",
		UniversityRanking: "0",
	}

	req, errs := Course(form)

	assert.Nil(t, req)
	assert.Equal(t, "Fees must be a non-negative number!", errs["fees"])
	assert.Contains(t, errs, "university_ranking")
}

func TestCourseRejectsUnknownLevel(t *testing.T) {
	form := Form{Title: "Databases", UniversityName: "UT", Level: "expert"}

	req, errs := Course(form)

	assert.Nil(t, req)
	assert.Contains(t, errs, "level")
}

func TestCourseOptionalFieldsStayNil(t *testing.T) {
	req, errs := Course(Form{Title: "Databases", UniversityName: "UT"})

	assert.Nil(t, errs)
	assert.Nil(t, req.Fees)
	assert.Nil(t, req.UniversityRanking)
}

func TestFromCourseRoundTripsNumericFields(t *testing.T) {
	fees := 299.0
	ranking := 87
	course := models.Course{
		Title:             "Distributed Systems",
		Level:             "advanced",
		Fees:              &fees,
		UniversityName:    "TU Berlin",
		UniversityRanking: &ranking,
	}

	form := FromCourse(course)

	assert.Equal(t, "299", form.Fees)
	assert.Equal(t, "87", form.UniversityRanking)

	req, errs := Course(form)
	assert.Nil(t, errs)
	assert.Equal(t, fees, *req.Fees)
	assert.Equal(t, ranking, *req.UniversityRanking)
}

func TestModuleValidation(t *testing.T) {
	req, errs := Module("inst-1", ModuleForm{CourseID: "c-1", ModuleNumber: "3", Name: "Raft"})

	assert.Nil(t, errs)
	assert.Equal(t, 3, req.ModuleNumber)
	assert.Equal(t, "inst-1", req.InstructorID)
}

func TestModuleRejectsNonPositiveNumber(t *testing.T) {
	_, errs := Module("inst-1", ModuleForm{CourseID: "c-1", ModuleNumber: "0", Name: "Raft"})
	assert.Contains(t, errs, "module_number")

	_, errs = Module("inst-1", ModuleForm{CourseID: "c-1", ModuleNumber: "three", Name: "Raft"})
	assert.Contains(t, errs, "module_number")
}

func TestContentRejectsInvalidTypeAndURL(t *testing.T) {
	form := ContentForm{
		CourseID:     "c-1",
		ModuleNumber: "1",
		Title:        "Lamport Clocks",
		Type:         "podcast",
		URL:          "ftp://example.com",
	}

	req, errs := Content("inst-1", form)

	assert.Nil(t, req)
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "url")
}

func TestGradeDefaultsStatusToCompleted(t *testing.T) {
	req, errs := Grade("inst-1", "c-1", GradeForm{StudentID: "s-1", Grade: "A"})

	assert.Nil(t, errs)
	assert.Equal(t, models.StatusCompleted, req.Status)
}

func TestGradeRequiresCourseSelection(t *testing.T) {
	_, errs := Grade("inst-1", "", GradeForm{StudentID: "s-1", Grade: "A"})
	assert.Contains(t, errs, "course_id")
}

func TestAssignRequiresBothSelections(t *testing.T) {
	_, errs := Assign("", "")
	assert.Contains(t, errs, "instructor_id")
	assert.Contains(t, errs, "course_id")

	req, errs := Assign("inst-1", "c-1")
	assert.Nil(t, errs)
	assert.Equal(t, "inst-1", req.InstructorID)
}
