package dashboard

import (
	"context"

	"coursehub/client"
	"coursehub/models"
	"coursehub/notify"
	studentValidator "coursehub/validators/student"
)

// Student slice keys.
const (
	SliceStudentSummary   SliceKey = "student_summary"
	SliceCatalog          SliceKey = "catalog"
	SliceEnrolled         SliceKey = "enrolled"
	SliceActiveCourses    SliceKey = "active_courses"
	SliceCompletedCourses SliceKey = "completed_courses"
	SliceProfile          SliceKey = "profile"
	SliceModules          SliceKey = "modules"
	SliceAssignments      SliceKey = "assignments"
	SliceAnnouncements    SliceKey = "announcements"
	SliceCourseInsights   SliceKey = "course_insights"
)

// Student actions.
const (
	ActionEnroll           Action = "enroll"
	ActionUpdateProfile    Action = "update_profile"
	ActionSubmitAssignment Action = "submit_assignment"
)

// StudentDashboard is the student view-state controller: catalog
// browsing, enrollments, course detail (modules, assignments,
// announcements, insights) and profile editing.
type StudentDashboard struct {
	*Controller
	userID string

	Summary       *models.DashboardSummary
	Catalog       []models.Course
	Enrolled      []models.EnrolledCourse
	Active        []models.EnrolledCourse
	Completed     []models.EnrolledCourse
	Profile       *models.StudentProfile
	Modules       []models.Module
	Assignments   []models.Assignment
	Announcements []models.Announcement
	Insights      *models.CourseAnalytics

	ActiveTab    string
	BrowseLevel  string
	BrowseSearch string
	ModuleSearch string

	openCourse string

	// ProfileForm is the profile edit buffer; while editingProfile is set
	// a profile re-fetch never overwrites it.
	ProfileForm    studentValidator.ProfileForm
	editingProfile bool

	SubmitURL     string
	submittingFor string
}

// NewStudentDashboard wires the student slices and side-effect table.
// The course-detail slices are scoped to the open course and no-op
// without one.
func NewStudentDashboard(api *client.Client, notifier *notify.Center, confirm ConfirmFunc, userID string) *StudentDashboard {
	d := &StudentDashboard{
		Controller:  newController(api, notifier, confirm),
		userID:      userID,
		ActiveTab:   "dashboard",
		BrowseLevel: "all",
	}

	d.registerSlice(SliceStudentSummary, func(ctx context.Context) error {
		summary, err := api.GetDashboard(ctx, userID, models.RoleStudent)
		if err != nil {
			return err
		}
		d.Summary = summary
		return nil
	})
	d.registerSlice(SliceCatalog, func(ctx context.Context) error {
		courses, err := api.ListCourses(ctx)
		if err != nil {
			return err
		}
		d.Catalog = courses
		return nil
	})
	d.registerSlice(SliceEnrolled, func(ctx context.Context) error {
		courses, err := api.MyCourses(ctx, userID, "")
		if err != nil {
			return err
		}
		d.Enrolled = courses
		return nil
	})
	d.registerSlice(SliceActiveCourses, func(ctx context.Context) error {
		courses, err := api.MyCourses(ctx, userID, models.StatusOngoing)
		if err != nil {
			return err
		}
		d.Active = courses
		return nil
	})
	d.registerSlice(SliceCompletedCourses, func(ctx context.Context) error {
		courses, err := api.MyCourses(ctx, userID, models.StatusCompleted)
		if err != nil {
			return err
		}
		d.Completed = courses
		return nil
	})
	d.registerSlice(SliceProfile, func(ctx context.Context) error {
		profile, err := api.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		d.Profile = profile
		return nil
	})
	d.registerSlice(SliceModules, func(ctx context.Context) error {
		if d.openCourse == "" {
			return nil
		}
		modules, err := api.StudentCourseModules(ctx, userID, d.openCourse)
		if err != nil {
			return err
		}
		d.Modules = modules
		return nil
	})
	d.registerSlice(SliceAssignments, func(ctx context.Context) error {
		if d.openCourse == "" {
			return nil
		}
		assignments, err := api.StudentCourseAssignments(ctx, userID, d.openCourse)
		if err != nil {
			return err
		}
		d.Assignments = assignments
		return nil
	})
	d.registerSlice(SliceAnnouncements, func(ctx context.Context) error {
		if d.openCourse == "" {
			return nil
		}
		announcements, err := api.StudentCourseAnnouncements(ctx, userID, d.openCourse)
		if err != nil {
			return err
		}
		d.Announcements = announcements
		return nil
	})
	d.registerSlice(SliceCourseInsights, func(ctx context.Context) error {
		if d.openCourse == "" {
			return nil
		}
		insights, err := api.StudentCourseAnalytics(ctx, userID, d.openCourse)
		if err != nil {
			return err
		}
		d.Insights = insights
		return nil
	})
	d.setPrimary(SliceStudentSummary)

	d.registerEffect(ActionEnroll, SliceEnrolled, SliceActiveCourses, SliceStudentSummary)
	d.registerEffect(ActionUpdateProfile, SliceProfile)
	d.registerEffect(ActionSubmitAssignment, SliceAssignments)

	return d
}

// OpenCourse focuses an enrolled course and fetches its detail slices.
// Stale detail from a previously open course is dropped up front.
func (d *StudentDashboard) OpenCourse(ctx context.Context, courseID string) {
	d.openCourse = courseID
	d.Modules = nil
	d.Assignments = nil
	d.Announcements = nil
	d.Insights = nil
	d.ModuleSearch = ""
	d.Refresh(ctx, SliceModules, SliceAssignments, SliceAnnouncements, SliceCourseInsights)
}

// CloseCourse leaves the course detail view.
func (d *StudentDashboard) CloseCourse() {
	d.openCourse = ""
	d.Modules = nil
	d.Assignments = nil
	d.Announcements = nil
	d.Insights = nil
	d.ModuleSearch = ""
	d.SubmitURL = ""
	d.submittingFor = ""
}

// OpenedCourse returns the focused course id, or "".
func (d *StudentDashboard) OpenedCourse() string { return d.openCourse }

// Enroll enrolls the student into a catalog course.
func (d *StudentDashboard) Enroll(ctx context.Context, courseID string) error {
	req := models.EnrollRequest{UserID: d.userID, CourseID: courseID}
	return d.dispatch(ctx, ActionEnroll,
		"Enrolled successfully!", "Failed to enroll",
		func(ctx context.Context) error { return d.api.Enroll(ctx, req) })
}

// BeginEditProfile opens the profile editor with a snapshot of the
// current profile. Returns false when the profile slice has not loaded.
func (d *StudentDashboard) BeginEditProfile() bool {
	if d.Profile == nil {
		return false
	}
	d.ProfileForm = studentValidator.FromProfile(*d.Profile)
	d.editingProfile = true
	return true
}

// CancelEditProfile discards all edits.
func (d *StudentDashboard) CancelEditProfile() {
	d.ProfileForm = studentValidator.ProfileForm{}
	d.editingProfile = false
}

// EditingProfile reports whether the profile editor is open.
func (d *StudentDashboard) EditingProfile() bool { return d.editingProfile }

// UpdateProfile validates the edit buffer and saves it. The editor
// closes only on confirmed success; on failure the buffer keeps the
// user's edits.
func (d *StudentDashboard) UpdateProfile(ctx context.Context) error {
	req, fieldErrs := studentValidator.Profile(d.userID, d.ProfileForm)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	err := d.dispatch(ctx, ActionUpdateProfile,
		"Profile updated successfully", "Failed to update profile",
		func(ctx context.Context) error { return d.api.UpdateProfile(ctx, *req) })
	if err != nil {
		return err
	}

	d.ProfileForm = studentValidator.ProfileForm{}
	d.editingProfile = false
	return nil
}

// BeginSubmission opens the solution-URL prompt for an assignment.
func (d *StudentDashboard) BeginSubmission(assignmentID string) {
	d.submittingFor = assignmentID
	d.SubmitURL = ""
}

// CancelSubmission closes the solution-URL prompt.
func (d *StudentDashboard) CancelSubmission() {
	d.submittingFor = ""
	d.SubmitURL = ""
}

// SubmittingFor returns the assignment id awaiting a solution URL, or "".
func (d *StudentDashboard) SubmittingFor() string { return d.submittingFor }

// SubmitAssignment validates the solution URL and submits it. An
// assignment that already has a submission is rejected locally; the
// backend enforces the same rule.
func (d *StudentDashboard) SubmitAssignment(ctx context.Context) error {
	for _, a := range d.Assignments {
		if a.AssignmentID == d.submittingFor && a.Submitted() {
			return &ValidationError{Fields: map[string]string{
				"assignment_id": "Assignment already submitted!",
			}}
		}
	}

	req, fieldErrs := studentValidator.Submission(d.userID, d.submittingFor, d.SubmitURL)
	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	err := d.dispatch(ctx, ActionSubmitAssignment,
		"Submission successful!", "Failed to submit assignment",
		func(ctx context.Context) error { return d.api.SubmitAssignment(ctx, *req) })
	if err != nil {
		return err
	}

	d.SubmitURL = ""
	d.submittingFor = ""
	return nil
}

// IsEnrolled reports whether the student is enrolled in the course.
func (d *StudentDashboard) IsEnrolled(courseID string) bool {
	for _, course := range d.Enrolled {
		if course.CourseID == courseID {
			return true
		}
	}
	return false
}

// VisibleCatalog applies the browse level filter and search.
func (d *StudentDashboard) VisibleCatalog() []models.Course {
	return FilterBrowse(d.Catalog, d.BrowseLevel, d.BrowseSearch)
}

// VisibleModules applies the module search within the open course.
func (d *StudentDashboard) VisibleModules() []models.Module {
	return FilterModules(d.Modules, d.ModuleSearch)
}

// AssignmentTotals sums graded marks across the open course's
// assignments and returns obtained, possible and the percentage
// (zero when nothing is graded yet).
func (d *StudentDashboard) AssignmentTotals() (obtained, possible, percent float64) {
	for _, a := range d.Assignments {
		if a.MarksObtained == nil {
			continue
		}
		obtained += *a.MarksObtained
		possible += a.MaxMarks
	}
	if possible > 0 {
		percent = obtained / possible * 100
	}
	return obtained, possible, percent
}
