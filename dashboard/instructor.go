package dashboard

import (
	"context"

	"coursehub/client"
	"coursehub/models"
	"coursehub/notify"
	courseValidator "coursehub/validators/course"
)

// Instructor slice keys.
const (
	SliceInstructorSummary SliceKey = "instructor_summary"
	SliceTaughtCourses     SliceKey = "taught_courses"
	SliceStudents          SliceKey = "students"
	SliceCourseModules     SliceKey = "course_modules"
)

// Instructor actions.
const (
	ActionGradeStudent  Action = "grade_student"
	ActionRemoveStudent Action = "remove_student"
	ActionCreateModule  Action = "create_module"
	ActionAddContent    Action = "add_content"
)

// InstructorDashboard is the instructor view-state controller: taught
// courses, per-course rosters, grading and module authoring.
type InstructorDashboard struct {
	*Controller
	instructorID string

	Summary  *models.DashboardSummary
	Courses  []models.InstructorCourse
	Students []models.CourseStudent
	Modules  []models.Module

	ActiveTab      string
	selectedCourse string

	GradeForm   courseValidator.GradeForm
	ModuleForm  courseValidator.ModuleForm
	ContentForm courseValidator.ContentForm
}

// NewInstructorDashboard wires the instructor slices and side-effect
// table. The students and modules loaders are scoped to the current
// course selection and no-op without one.
func NewInstructorDashboard(api *client.Client, notifier *notify.Center, confirm ConfirmFunc, instructorID string) *InstructorDashboard {
	d := &InstructorDashboard{
		Controller:   newController(api, notifier, confirm),
		instructorID: instructorID,
		ActiveTab:    "dashboard",
		GradeForm:    courseValidator.GradeForm{Status: models.StatusCompleted},
	}

	d.registerSlice(SliceInstructorSummary, func(ctx context.Context) error {
		summary, err := api.GetDashboard(ctx, instructorID, models.RoleInstructor)
		if err != nil {
			return err
		}
		d.Summary = summary
		return nil
	})
	d.registerSlice(SliceTaughtCourses, func(ctx context.Context) error {
		courses, err := api.InstructorCourses(ctx, instructorID)
		if err != nil {
			return err
		}
		d.Courses = courses
		return nil
	})
	d.registerSlice(SliceStudents, func(ctx context.Context) error {
		if d.selectedCourse == "" {
			return nil
		}
		students, err := api.CourseStudents(ctx, instructorID, d.selectedCourse)
		if err != nil {
			return err
		}
		d.Students = students
		return nil
	})
	d.registerSlice(SliceCourseModules, func(ctx context.Context) error {
		if d.selectedCourse == "" {
			return nil
		}
		modules, err := api.CourseModules(ctx, instructorID, d.selectedCourse)
		if err != nil {
			return err
		}
		d.Modules = modules
		return nil
	})
	d.setPrimary(SliceInstructorSummary)

	d.registerEffect(ActionGradeStudent, SliceStudents, SliceInstructorSummary)
	d.registerEffect(ActionRemoveStudent, SliceStudents, SliceTaughtCourses, SliceInstructorSummary)
	d.registerEffect(ActionCreateModule, SliceCourseModules)
	d.registerEffect(ActionAddContent, SliceCourseModules)

	return d
}

// SelectCourse focuses a taught course and fetches its roster and
// modules. The previous selection's data is dropped up front so a slow
// fetch never shows another course's students.
func (d *InstructorDashboard) SelectCourse(ctx context.Context, courseID string) {
	d.selectedCourse = courseID
	d.Students = nil
	d.Modules = nil
	d.Refresh(ctx, SliceStudents, SliceCourseModules)
}

// ClearSelection drops the course focus and its scoped slices.
func (d *InstructorDashboard) ClearSelection() {
	d.selectedCourse = ""
	d.Students = nil
	d.Modules = nil
}

// SelectedCourse returns the focused course id, or "".
func (d *InstructorDashboard) SelectedCourse() string { return d.selectedCourse }

// GradeStudent validates the grading form and records the grade for the
// selected course. The form resets on success.
func (d *InstructorDashboard) GradeStudent(ctx context.Context) error {
	req, fieldErrs := courseValidator.Grade(d.instructorID, d.selectedCourse, d.GradeForm)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	err := d.dispatch(ctx, ActionGradeStudent,
		"Grade submitted successfully", "Failed to submit grade",
		func(ctx context.Context) error { return d.api.GradeStudent(ctx, *req) })
	if err != nil {
		return err
	}

	d.GradeForm = courseValidator.GradeForm{Status: models.StatusCompleted}
	return nil
}

// RemoveStudent drops a student from the selected course after explicit
// confirmation.
func (d *InstructorDashboard) RemoveStudent(ctx context.Context, studentID string) error {
	if !d.confirmed("Are you sure you want to remove this student from the course?") {
		return nil
	}
	req := models.RemoveStudentRequest{
		InstructorID: d.instructorID,
		CourseID:     d.selectedCourse,
		StudentID:    studentID,
	}
	return d.dispatch(ctx, ActionRemoveStudent,
		"Student removed from course", "Failed to remove student",
		func(ctx context.Context) error { return d.api.RemoveStudent(ctx, req) })
}

// CreateModule validates the module form and creates the module. The
// form's course defaults to the current selection; once the backend
// confirms, the selection follows the module's course so the refreshed
// list is the one just written to. A failed write leaves the selection
// and its slices untouched.
func (d *InstructorDashboard) CreateModule(ctx context.Context) error {
	form := d.ModuleForm
	if form.CourseID == "" {
		form.CourseID = d.selectedCourse
	}
	req, fieldErrs := courseValidator.Module(d.instructorID, form)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	err := d.dispatch(ctx, ActionCreateModule,
		"Module created successfully", "Failed to create module",
		func(ctx context.Context) error {
			if err := d.api.CreateModule(ctx, *req); err != nil {
				return err
			}
			d.selectedCourse = req.CourseID
			return nil
		})
	if err != nil {
		return err
	}

	d.ModuleForm = courseValidator.ModuleForm{}
	return nil
}

// AddContent validates the content form and attaches the content to its
// module, with the same course-defaulting as CreateModule.
func (d *InstructorDashboard) AddContent(ctx context.Context) error {
	form := d.ContentForm
	if form.CourseID == "" {
		form.CourseID = d.selectedCourse
	}
	req, fieldErrs := courseValidator.Content(d.instructorID, form)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	err := d.dispatch(ctx, ActionAddContent,
		"Content added successfully", "Failed to add content",
		func(ctx context.Context) error {
			if err := d.api.AddModuleContent(ctx, *req); err != nil {
				return err
			}
			d.selectedCourse = req.CourseID
			return nil
		})
	if err != nil {
		return err
	}

	d.ContentForm = courseValidator.ContentForm{}
	return nil
}

// TotalStudents sums live enrollment across all taught courses.
func (d *InstructorDashboard) TotalStudents() int {
	total := 0
	for _, course := range d.Courses {
		total += course.EnrolledCount
	}
	return total
}
