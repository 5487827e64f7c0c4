package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/models"
	"coursehub/notify"
)

func TestApproveAllPendingSequentialBestEffort(t *testing.T) {
	b := newStubBackend(t)
	b.users = []models.User{
		{UserID: "u-1", Name: "Lena", Approved: true},
		{UserID: "u-2", Name: "Tom"},
		{UserID: "u-3", Name: "Yuki"},
		{UserID: "u-4", Name: "Ana"},
	}
	b.failWith("POST /admin/users/u-3/approve", "User not found")

	d, rec := newAdminForTest(t, b, nil)
	d.Load(context.Background())
	usersBefore := b.hitCount("GET /admin/users")

	approved, failed := d.ApproveAllPending(context.Background())

	assert.Equal(t, 2, approved)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, b.hitCount("POST /admin/users/u-2/approve"))
	assert.Equal(t, 1, b.hitCount("POST /admin/users/u-3/approve"))
	assert.Equal(t, 1, b.hitCount("POST /admin/users/u-4/approve"))

	// The users slice re-fetches after each successful item, and the
	// whole bulk run emits exactly one summary notification.
	assert.Equal(t, usersBefore+2, b.hitCount("GET /admin/users"))
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, notify.TypeError, notifications[0].Type)
	assert.Equal(t, "Approved 2 of 3 users", notifications[0].Message)
}

func TestApproveAllPendingNoPendingUsers(t *testing.T) {
	b := newStubBackend(t)
	b.users = []models.User{{UserID: "u-1", Approved: true}}

	d, rec := newAdminForTest(t, b, nil)
	d.Load(context.Background())

	approved, failed := d.ApproveAllPending(context.Background())

	assert.Zero(t, approved)
	assert.Zero(t, failed)
	assert.Empty(t, rec.all())
}

func TestRejectAllPendingDeclinedConfirmation(t *testing.T) {
	b := newStubBackend(t)
	b.users = []models.User{{UserID: "u-2", Name: "Tom"}}
	decline := func(string) bool { return false }

	d, rec := newAdminForTest(t, b, decline)
	d.Load(context.Background())

	rejected, failed := d.RejectAllPending(context.Background())

	assert.Zero(t, rejected)
	assert.Zero(t, failed)
	assert.Zero(t, b.hitCount("DELETE /admin/users/u-2"))
	assert.Empty(t, rec.all())
}

func TestEditCourseBufferSnapshotsAndSurvivesRefetch(t *testing.T) {
	fees := 199.0
	b := newStubBackend(t)
	b.courses = []models.Course{{
		CourseID: "c-1", Title: "Databases", Level: "intermediate",
		Fees: &fees, UniversityName: "University of Tokyo",
	}}

	d, _ := newAdminForTest(t, b, nil)
	d.Load(context.Background())

	assert.True(t, d.BeginEditCourse("c-1"))
	assert.Equal(t, "Databases", d.CourseForm.Title)
	assert.Equal(t, "199", d.CourseForm.Fees)
	d.CourseForm.Title = "Advanced Databases"

	// A concurrent slice re-fetch must not clobber the open buffer.
	b.courses[0].Title = "Renamed Upstream"
	d.Refresh(context.Background(), SliceAdminCourses)

	assert.Equal(t, "Advanced Databases", d.CourseForm.Title)
	assert.Equal(t, "c-1", d.EditingCourse())
}

func TestCancelEditDiscardsBuffer(t *testing.T) {
	b := newStubBackend(t)
	b.courses = []models.Course{{CourseID: "c-1", Title: "Databases", UniversityName: "UT"}}

	d, _ := newAdminForTest(t, b, nil)
	d.Load(context.Background())
	d.BeginEditCourse("c-1")
	d.CourseForm.Title = "Changed"

	d.CancelEditCourse()

	assert.Empty(t, d.CourseForm.Title)
	assert.Empty(t, d.EditingCourse())
}

func TestSaveCourseCreateResetsFormOnSuccess(t *testing.T) {
	b := newStubBackend(t)
	d, rec := newAdminForTest(t, b, nil)
	d.CourseForm = courseFormFixture()

	err := d.SaveCourse(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("POST /admin/courses"))
	assert.Empty(t, d.CourseForm.Title)
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Course created successfully", notifications[0].Message)
}

func TestSaveCourseEditSendsUpdate(t *testing.T) {
	b := newStubBackend(t)
	b.courses = []models.Course{{CourseID: "c-1", Title: "Databases", UniversityName: "UT"}}

	d, _ := newAdminForTest(t, b, nil)
	d.Load(context.Background())
	d.BeginEditCourse("c-1")
	d.CourseForm.Title = "Advanced Databases"

	err := d.SaveCourse(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("PUT /admin/courses/c-1"))
	assert.Zero(t, b.hitCount("POST /admin/courses"))
	assert.Empty(t, d.EditingCourse())
}

func TestSaveCourseFailureKeepsFormAndEditorMode(t *testing.T) {
	b := newStubBackend(t)
	b.failWith("POST /admin/courses", "Title already exists")

	d, _ := newAdminForTest(t, b, nil)
	d.CourseForm = courseFormFixture()

	err := d.SaveCourse(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "Go Basics", d.CourseForm.Title)
}

func TestAssignInstructorResetsSelectionOnSuccess(t *testing.T) {
	b := newStubBackend(t)
	d, _ := newAdminForTest(t, b, nil)
	d.AssignInstructorID = "u-inst-1"
	d.AssignCourseID = "c-1"

	err := d.AssignInstructor(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("POST /admin/assign"))
	assert.Empty(t, d.AssignInstructorID)
	assert.Empty(t, d.AssignCourseID)
}

func TestAssignInstructorRequiresBothSelections(t *testing.T) {
	b := newStubBackend(t)
	d, rec := newAdminForTest(t, b, nil)

	err := d.AssignInstructor(context.Background())

	assert.Error(t, err)
	assert.Zero(t, b.hitCount("POST /admin/assign"))
	assert.Empty(t, rec.all())
}

func TestVisibleUsersFilterIsPureAndIdempotent(t *testing.T) {
	b := newStubBackend(t)
	b.users = []models.User{
		{UserID: "u-1", Name: "Lena Fischer", Email: "lena@x.dev", Role: "student"},
		{UserID: "u-2", Name: "Tom Becker", Email: "tom@x.dev", Role: "instructor"},
	}

	d, _ := newAdminForTest(t, b, nil)
	d.Load(context.Background())

	d.UserSearch = "lena"
	first := d.VisibleUsers()
	second := d.VisibleUsers()
	assert.Equal(t, first, second)
	assert.Len(t, first, 1)
	assert.Len(t, d.Users, 2)

	d.UserSearch = ""
	assert.Len(t, d.VisibleUsers(), 2)
}
