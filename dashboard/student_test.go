package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/models"
	"coursehub/notify"
)

func newStudentForTest(t *testing.T, b *stubBackend) (*StudentDashboard, *notificationRecorder) {
	t.Helper()
	center := notify.NewCenter(0)
	rec := recordNotifications(center)
	d := NewStudentDashboard(newTestClient(b), center, nil, "u-stud-1")
	return d, rec
}

func TestEnrollRefreshesEnrollmentSlices(t *testing.T) {
	b := newStubBackend(t)
	d, rec := newStudentForTest(t, b)
	d.Load(context.Background())
	myCoursesBefore := b.hitCount("GET /courses/my-courses")

	err := d.Enroll(context.Background(), "c-1")

	assert.NoError(t, err)
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Enrolled successfully!", notifications[0].Message)

	// enrolled + active both hit my-courses; completed is untouched.
	assert.Equal(t, myCoursesBefore+2, b.hitCount("GET /courses/my-courses"))
}

func TestEnrollConflictSurfacesBackendText(t *testing.T) {
	b := newStubBackend(t)
	b.failWith("POST /courses/enroll", "Already enrolled or invalid course")

	d, rec := newStudentForTest(t, b)
	err := d.Enroll(context.Background(), "c-1")

	assert.Error(t, err)
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, notify.TypeError, notifications[0].Type)
	assert.Equal(t, "Already enrolled or invalid course", notifications[0].Message)
}

func TestProfileEditBufferSurvivesRefetch(t *testing.T) {
	b := newStubBackend(t)
	b.profile = &models.StudentProfile{UserID: "u-stud-1", Name: "Lena Fischer", Country: "Germany"}

	d, _ := newStudentForTest(t, b)
	d.Load(context.Background())

	assert.True(t, d.BeginEditProfile())
	d.ProfileForm.Country = "France"

	b.profile.Country = "Changed Upstream"
	d.Refresh(context.Background(), SliceProfile)

	assert.Equal(t, "France", d.ProfileForm.Country)
	assert.True(t, d.EditingProfile())
}

func TestBeginEditProfileWithoutLoadedProfile(t *testing.T) {
	b := newStubBackend(t)
	d, _ := newStudentForTest(t, b)

	assert.False(t, d.BeginEditProfile())
}

func TestUpdateProfileClosesEditorOnSuccessOnly(t *testing.T) {
	b := newStubBackend(t)
	b.profile = &models.StudentProfile{UserID: "u-stud-1", Name: "Lena Fischer"}

	d, _ := newStudentForTest(t, b)
	d.Load(context.Background())
	d.BeginEditProfile()

	b.failWith("PUT /student/profile", "Student not found")
	assert.Error(t, d.UpdateProfile(context.Background()))
	assert.True(t, d.EditingProfile())

	b.clearFailures()
	assert.NoError(t, d.UpdateProfile(context.Background()))
	assert.False(t, d.EditingProfile())
}

func TestSubmitAssignmentFlow(t *testing.T) {
	b := newStubBackend(t)
	b.assignments = []models.Assignment{{AssignmentID: "a-1", CourseID: "c-1", MaxMarks: 100}}

	d, rec := newStudentForTest(t, b)
	d.Load(context.Background())
	d.OpenCourse(context.Background(), "c-1")
	assignmentsBefore := b.hitCount("GET /student/courses/c-1/assignments")

	d.BeginSubmission("a-1")
	d.SubmitURL = "https://github.com/lena/solution"

	err := d.SubmitAssignment(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("POST /student/assignments/submit"))
	assert.Equal(t, assignmentsBefore+1, b.hitCount("GET /student/courses/c-1/assignments"))
	assert.Empty(t, d.SubmittingFor())
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Submission successful!", notifications[0].Message)
}

func TestSubmitAssignmentRejectsSecondSubmission(t *testing.T) {
	url := "https://github.com/lena/solution"
	b := newStubBackend(t)
	b.assignments = []models.Assignment{{AssignmentID: "a-1", CourseID: "c-1", SubmissionURL: &url}}

	d, rec := newStudentForTest(t, b)
	d.Load(context.Background())
	d.OpenCourse(context.Background(), "c-1")
	d.BeginSubmission("a-1")
	d.SubmitURL = "https://github.com/lena/v2"

	err := d.SubmitAssignment(context.Background())

	assert.Error(t, err)
	assert.Zero(t, b.hitCount("POST /student/assignments/submit"))
	assert.Empty(t, rec.all())
}

func TestSubmitAssignmentValidatesURL(t *testing.T) {
	b := newStubBackend(t)
	d, _ := newStudentForTest(t, b)
	d.BeginSubmission("a-1")
	d.SubmitURL = "not a url"

	err := d.SubmitAssignment(context.Background())

	assert.Error(t, err)
	assert.Zero(t, b.hitCount("POST /student/assignments/submit"))
}

func TestCloseCourseDropsDetailSlices(t *testing.T) {
	b := newStubBackend(t)
	b.modules = []models.Module{{ModuleNumber: 1, Name: "Raft"}}

	d, _ := newStudentForTest(t, b)
	d.Load(context.Background())
	d.OpenCourse(context.Background(), "c-1")
	assert.Len(t, d.Modules, 1)

	d.CloseCourse()

	assert.Empty(t, d.OpenedCourse())
	assert.Empty(t, d.Modules)
}

func TestVisibleCatalogCombinesLevelAndSearch(t *testing.T) {
	b := newStubBackend(t)
	b.courses = []models.Course{
		{CourseID: "c-1", Title: "Go Basics", Level: "beginner"},
		{CourseID: "c-2", Title: "Go Internals", Level: "advanced"},
		{CourseID: "c-3", Title: "SQL Basics", Level: "beginner"},
	}

	d, _ := newStudentForTest(t, b)
	d.Load(context.Background())

	d.BrowseLevel = "beginner"
	d.BrowseSearch = "go"
	visible := d.VisibleCatalog()
	assert.Len(t, visible, 1)
	assert.Equal(t, "c-1", visible[0].CourseID)

	d.BrowseLevel = "all"
	d.BrowseSearch = ""
	assert.Len(t, d.VisibleCatalog(), 3)
}

func TestIsEnrolled(t *testing.T) {
	b := newStubBackend(t)
	b.enrolled = []models.EnrolledCourse{{CourseID: "c-1", Status: "ongoing"}}

	d, _ := newStudentForTest(t, b)
	d.Load(context.Background())

	assert.True(t, d.IsEnrolled("c-1"))
	assert.False(t, d.IsEnrolled("c-2"))
}

func TestAssignmentTotalsIgnoreUngraded(t *testing.T) {
	marks := 45.0
	b := newStubBackend(t)
	b.assignments = []models.Assignment{
		{AssignmentID: "a-1", MaxMarks: 50, MarksObtained: &marks},
		{AssignmentID: "a-2", MaxMarks: 100},
	}

	d, _ := newStudentForTest(t, b)
	d.Load(context.Background())
	d.OpenCourse(context.Background(), "c-1")

	obtained, possible, percent := d.AssignmentTotals()
	assert.Equal(t, 45.0, obtained)
	assert.Equal(t, 50.0, possible)
	assert.Equal(t, 90.0, percent)
}
