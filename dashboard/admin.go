package dashboard

import (
	"context"
	"fmt"

	"coursehub/client"
	"coursehub/models"
	"coursehub/notify"
	courseValidator "coursehub/validators/course"
)

// Admin slice keys.
const (
	SliceAdminSummary SliceKey = "admin_summary"
	SliceUsers        SliceKey = "users"
	SliceAdminCourses SliceKey = "admin_courses"
	SliceInstructors  SliceKey = "instructors"
)

// Admin actions.
const (
	ActionApproveUser      Action = "approve_user"
	ActionDeleteUser       Action = "delete_user"
	ActionCreateCourse     Action = "create_course"
	ActionUpdateCourse     Action = "update_course"
	ActionDeleteCourse     Action = "delete_course"
	ActionAssignInstructor Action = "assign_instructor"
	ActionRemoveInstructor Action = "remove_instructor"
)

// AdminDashboard is the admin view-state controller: user approval and
// deletion, course CRUD and instructor assignment.
type AdminDashboard struct {
	*Controller
	userID string

	Summary     *models.DashboardSummary
	Users       []models.User
	Courses     []models.Course
	Instructors []models.Instructor

	ActiveTab    string
	UserSearch   string
	CourseSearch string

	// CourseForm is the create/edit buffer. It is initialized from
	// defaults, or from a snapshot of the course when editing starts;
	// re-fetches never touch it and closing the editor is the only reset.
	CourseForm    courseValidator.Form
	editingCourse string

	AssignInstructorID string
	AssignCourseID     string
}

// NewAdminDashboard wires the admin slices and side-effect table.
func NewAdminDashboard(api *client.Client, notifier *notify.Center, confirm ConfirmFunc, userID string) *AdminDashboard {
	d := &AdminDashboard{
		Controller: newController(api, notifier, confirm),
		userID:     userID,
		ActiveTab:  "dashboard",
	}

	d.registerSlice(SliceAdminSummary, func(ctx context.Context) error {
		summary, err := api.GetDashboard(ctx, userID, models.RoleAdmin)
		if err != nil {
			return err
		}
		d.Summary = summary
		return nil
	})
	d.registerSlice(SliceUsers, func(ctx context.Context) error {
		users, err := api.ListUsers(ctx)
		if err != nil {
			return err
		}
		d.Users = users
		return nil
	})
	d.registerSlice(SliceAdminCourses, func(ctx context.Context) error {
		courses, err := api.AdminCourses(ctx)
		if err != nil {
			return err
		}
		d.Courses = courses
		return nil
	})
	d.registerSlice(SliceInstructors, func(ctx context.Context) error {
		instructors, err := api.ListInstructors(ctx)
		if err != nil {
			return err
		}
		d.Instructors = instructors
		return nil
	})
	d.setPrimary(SliceAdminSummary)

	d.registerEffect(ActionApproveUser, SliceUsers)
	d.registerEffect(ActionDeleteUser, SliceUsers, SliceAdminSummary)
	d.registerEffect(ActionCreateCourse, SliceAdminCourses, SliceAdminSummary)
	d.registerEffect(ActionUpdateCourse, SliceAdminCourses)
	d.registerEffect(ActionDeleteCourse, SliceAdminCourses, SliceAdminSummary)
	d.registerEffect(ActionAssignInstructor, SliceAdminCourses)
	d.registerEffect(ActionRemoveInstructor, SliceAdminCourses)

	return d
}

// ApproveUser approves a single pending user.
func (d *AdminDashboard) ApproveUser(ctx context.Context, userID string) error {
	return d.dispatch(ctx, ActionApproveUser,
		"User approved successfully", "Failed to approve user",
		func(ctx context.Context) error { return d.api.ApproveUser(ctx, userID) })
}

// DeleteUser deletes a user after explicit confirmation. A declined
// confirmation is a no-op.
func (d *AdminDashboard) DeleteUser(ctx context.Context, userID string) error {
	if !d.confirmed("Are you sure you want to delete this user?") {
		return nil
	}
	return d.dispatch(ctx, ActionDeleteUser,
		"User deleted successfully", "Failed to delete user",
		func(ctx context.Context) error { return d.api.DeleteUser(ctx, userID) })
}

// ApproveAllPending approves every pending user with one sequential call
// per user, each awaited before the next. A failed item does not abort
// the loop (best-effort); the users slice is re-fetched after every
// successful item so partial completion is observable. The whole bulk
// operation emits one summary notification.
func (d *AdminDashboard) ApproveAllPending(ctx context.Context) (approved, failed int) {
	pending := d.PendingUsers()
	if len(pending) == 0 {
		return 0, 0
	}

	for _, user := range pending {
		if err := d.api.ApproveUser(ctx, user.UserID); err != nil {
			failed++
			continue
		}
		approved++
		d.Refresh(ctx, SliceUsers)
	}

	if failed == 0 {
		d.notifier.Success(fmt.Sprintf("Approved %d users", approved))
	} else {
		d.notifier.Error(fmt.Sprintf("Approved %d of %d users", approved, approved+failed))
	}
	return approved, failed
}

// RejectAllPending deletes every pending user after one upfront
// confirmation, with the same sequential best-effort semantics as
// ApproveAllPending.
func (d *AdminDashboard) RejectAllPending(ctx context.Context) (rejected, failed int) {
	pending := d.PendingUsers()
	if len(pending) == 0 {
		return 0, 0
	}
	if !d.confirmed(fmt.Sprintf("Are you sure you want to reject %d pending users?", len(pending))) {
		return 0, 0
	}

	for _, user := range pending {
		if err := d.api.DeleteUser(ctx, user.UserID); err != nil {
			failed++
			continue
		}
		rejected++
		d.Refresh(ctx, SliceUsers)
	}
	d.Refresh(ctx, SliceAdminSummary)

	if failed == 0 {
		d.notifier.Success(fmt.Sprintf("Rejected %d users", rejected))
	} else {
		d.notifier.Error(fmt.Sprintf("Rejected %d of %d users", rejected, rejected+failed))
	}
	return rejected, failed
}

// BeginEditCourse opens the course editor with a snapshot of the course's
// current field values. Returns false when the course is not in the
// courses slice.
func (d *AdminDashboard) BeginEditCourse(courseID string) bool {
	for _, course := range d.Courses {
		if course.CourseID == courseID {
			d.CourseForm = courseValidator.FromCourse(course)
			d.editingCourse = courseID
			return true
		}
	}
	return false
}

// CancelEditCourse discards all edits and resets the form to defaults.
func (d *AdminDashboard) CancelEditCourse() {
	d.CourseForm = courseValidator.Form{}
	d.editingCourse = ""
}

// EditingCourse returns the id of the course being edited, or "" when the
// form is in create mode.
func (d *AdminDashboard) EditingCourse() string { return d.editingCourse }

// SaveCourse validates the course form and sends a create or update,
// depending on editor mode. The form resets only on confirmed success.
func (d *AdminDashboard) SaveCourse(ctx context.Context) error {
	req, fieldErrs := courseValidator.Course(d.CourseForm)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	var err error
	if d.editingCourse != "" {
		courseID := d.editingCourse
		err = d.dispatch(ctx, ActionUpdateCourse,
			"Course updated successfully", "Failed to update course",
			func(ctx context.Context) error { return d.api.UpdateCourse(ctx, courseID, *req) })
	} else {
		err = d.dispatch(ctx, ActionCreateCourse,
			"Course created successfully", "Failed to create course",
			func(ctx context.Context) error { return d.api.CreateCourse(ctx, *req) })
	}
	if err != nil {
		return err
	}

	d.CourseForm = courseValidator.Form{}
	d.editingCourse = ""
	return nil
}

// DeleteCourse deletes a course after explicit confirmation.
func (d *AdminDashboard) DeleteCourse(ctx context.Context, courseID string) error {
	if !d.confirmed("Are you sure you want to delete this course?") {
		return nil
	}
	return d.dispatch(ctx, ActionDeleteCourse,
		"Course deleted successfully", "Failed to delete course",
		func(ctx context.Context) error { return d.api.DeleteCourse(ctx, courseID) })
}

// AssignInstructor assigns the selected instructor to the selected
// course and clears the selection on success.
func (d *AdminDashboard) AssignInstructor(ctx context.Context) error {
	req, fieldErrs := courseValidator.Assign(d.AssignInstructorID, d.AssignCourseID)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	err := d.dispatch(ctx, ActionAssignInstructor,
		"Instructor assigned successfully", "Failed to assign instructor",
		func(ctx context.Context) error { return d.api.AssignInstructor(ctx, *req) })
	if err != nil {
		return err
	}

	d.AssignInstructorID = ""
	d.AssignCourseID = ""
	return nil
}

// RemoveInstructor unlinks an instructor from a course after explicit
// confirmation.
func (d *AdminDashboard) RemoveInstructor(ctx context.Context, courseID, instructorID string) error {
	if !d.confirmed("Remove this instructor from the course?") {
		return nil
	}
	return d.dispatch(ctx, ActionRemoveInstructor,
		"Instructor removed from course", "Failed to remove instructor",
		func(ctx context.Context) error { return d.api.RemoveInstructor(ctx, courseID, instructorID) })
}

// PendingUsers returns the users awaiting approval.
func (d *AdminDashboard) PendingUsers() []models.User {
	pending := make([]models.User, 0)
	for _, user := range d.Users {
		if !user.Approved {
			pending = append(pending, user)
		}
	}
	return pending
}

// VisibleUsers applies the user search filter.
func (d *AdminDashboard) VisibleUsers() []models.User {
	return FilterUsers(d.Users, d.UserSearch)
}

// VisibleCourses applies the course search filter.
func (d *AdminDashboard) VisibleCourses() []models.Course {
	return FilterCourses(d.Courses, d.CourseSearch)
}
