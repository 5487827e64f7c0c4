package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/models"
	"coursehub/notify"
	courseValidator "coursehub/validators/course"
)

func newInstructorForTest(t *testing.T, b *stubBackend, confirm ConfirmFunc) (*InstructorDashboard, *notificationRecorder) {
	t.Helper()
	center := notify.NewCenter(0)
	rec := recordNotifications(center)
	d := NewInstructorDashboard(newTestClient(b), center, confirm, "u-inst-1")
	return d, rec
}

func TestScopedSlicesNoopWithoutSelection(t *testing.T) {
	b := newStubBackend(t)
	b.students = []models.CourseStudent{{UserID: "u-1", Name: "Lena"}}

	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())

	assert.Empty(t, d.Students)
	assert.Zero(t, b.hitCount("GET /instructor/courses/c-1/students"))
}

func TestSelectCourseFetchesRosterAndModules(t *testing.T) {
	b := newStubBackend(t)
	b.students = []models.CourseStudent{{UserID: "u-1", Name: "Lena", Status: "ongoing"}}
	b.modules = []models.Module{{ModuleNumber: 1, Name: "Raft"}}

	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")

	assert.Equal(t, "c-1", d.SelectedCourse())
	assert.Len(t, d.Students, 1)
	assert.Len(t, d.Modules, 1)
	assert.Equal(t, 1, b.hitCount("GET /instructor/courses/c-1/students"))
	assert.Equal(t, 1, b.hitCount("GET /instructor/courses/c-1/modules"))
}

func TestSelectCourseDropsStaleRosterUpfront(t *testing.T) {
	b := newStubBackend(t)
	b.students = []models.CourseStudent{{UserID: "u-1", Name: "Lena"}}

	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")
	assert.Len(t, d.Students, 1)

	b.failWith("GET /instructor/courses/c-2/students", "boom")
	b.failWith("GET /instructor/courses/c-2/modules", "boom")
	d.SelectCourse(context.Background(), "c-2")

	// The first course's roster must not bleed into the new selection.
	assert.Empty(t, d.Students)
}

func TestGradeStudentResetsFormOnSuccess(t *testing.T) {
	b := newStubBackend(t)
	d, rec := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")
	d.GradeForm = courseValidator.GradeForm{StudentID: "u-1", Grade: "A"}

	err := d.GradeStudent(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("POST /instructor/grade"))
	assert.Empty(t, d.GradeForm.StudentID)
	assert.Equal(t, models.StatusCompleted, d.GradeForm.Status)
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Grade submitted successfully", notifications[0].Message)
}

func TestGradeStudentRequiresSelection(t *testing.T) {
	b := newStubBackend(t)
	d, rec := newInstructorForTest(t, b, nil)
	d.GradeForm = courseValidator.GradeForm{StudentID: "u-1", Grade: "A"}

	err := d.GradeStudent(context.Background())

	assert.Error(t, err)
	assert.Zero(t, b.hitCount("POST /instructor/grade"))
	assert.Empty(t, rec.all())
}

func TestRemoveStudentNeedsConfirmation(t *testing.T) {
	b := newStubBackend(t)
	decline := func(string) bool { return false }

	d, rec := newInstructorForTest(t, b, decline)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")

	err := d.RemoveStudent(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.Zero(t, b.hitCount("POST /instructor/remove-student"))
	assert.Empty(t, rec.all())
}

func TestCreateModuleDefaultsCourseToSelection(t *testing.T) {
	b := newStubBackend(t)
	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")
	modulesBefore := b.hitCount("GET /instructor/courses/c-1/modules")

	d.ModuleForm = courseValidator.ModuleForm{ModuleNumber: "2", Name: "Consensus"}
	err := d.CreateModule(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("POST /instructor/module"))
	assert.Equal(t, modulesBefore+1, b.hitCount("GET /instructor/courses/c-1/modules"))
	assert.Empty(t, d.ModuleForm.Name)
}

func TestCreateModuleFailureKeepsSelection(t *testing.T) {
	b := newStubBackend(t)
	b.students = []models.CourseStudent{{UserID: "u-1", Name: "Lena", Status: "ongoing"}}
	b.failWith("POST /instructor/module", "Module number already exists for this course")

	d, rec := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")

	d.ModuleForm = courseValidator.ModuleForm{CourseID: "c-2", ModuleNumber: "1", Name: "Raft"}
	err := d.CreateModule(context.Background())

	assert.Error(t, err)
	// The write never confirmed, so the focus and its roster stay put.
	assert.Equal(t, "c-1", d.SelectedCourse())
	assert.Len(t, d.Students, 1)
	assert.Zero(t, b.hitCount("GET /instructor/courses/c-2/modules"))
	notifications := rec.all()
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Module number already exists for this course", notifications[0].Message)
}

func TestCreateModuleRetargetsSelectionOnSuccess(t *testing.T) {
	b := newStubBackend(t)
	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")

	d.ModuleForm = courseValidator.ModuleForm{CourseID: "c-2", ModuleNumber: "1", Name: "Raft"}
	err := d.CreateModule(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "c-2", d.SelectedCourse())
	assert.Equal(t, 1, b.hitCount("GET /instructor/courses/c-2/modules"))
}

func TestAddContentFailureKeepsSelection(t *testing.T) {
	b := newStubBackend(t)
	b.failWith("POST /instructor/module-content", "Module not found")

	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())
	d.SelectCourse(context.Background(), "c-1")

	d.ContentForm = courseValidator.ContentForm{
		CourseID: "c-2", ModuleNumber: "1", Title: "Notes", Type: "video", URL: "https://x.dev/notes",
	}
	err := d.AddContent(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "c-1", d.SelectedCourse())
}

func TestAddContentValidatesType(t *testing.T) {
	b := newStubBackend(t)
	d, rec := newInstructorForTest(t, b, nil)
	d.SelectCourse(context.Background(), "c-1")
	d.ContentForm = courseValidator.ContentForm{
		ModuleNumber: "1", Title: "Notes", Type: "podcast", URL: "https://x.dev/notes",
	}

	err := d.AddContent(context.Background())

	assert.Error(t, err)
	assert.Zero(t, b.hitCount("POST /instructor/module-content"))
	assert.Empty(t, rec.all())
}

func TestTotalStudentsSumsEnrollment(t *testing.T) {
	b := newStubBackend(t)
	b.taught = []models.InstructorCourse{
		{CourseID: "c-1", EnrolledCount: 12},
		{CourseID: "c-2", EnrolledCount: 5},
	}

	d, _ := newInstructorForTest(t, b, nil)
	d.Load(context.Background())

	assert.Equal(t, 17, d.TotalStudents())
}
