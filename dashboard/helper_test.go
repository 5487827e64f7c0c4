package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"coursehub/client"
	"coursehub/models"
	"coursehub/notify"
	courseValidator "coursehub/validators/course"
)

// stubBackend is a scriptable in-memory backend for dashboard tests. It
// counts every request, serves collections from its fields, and can be
// told to fail specific routes with a backend error text.
type stubBackend struct {
	mu   sync.Mutex
	hits map[string]int
	fail map[string]string

	users       []models.User
	courses     []models.Course
	instructors []models.Instructor
	taught      []models.InstructorCourse
	students    []models.CourseStudent
	modules     []models.Module
	enrolled    []models.EnrolledCourse
	assignments []models.Assignment
	profile     *models.StudentProfile
	series      []models.ChartPoint

	srv *httptest.Server
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	b := &stubBackend{
		hits: make(map[string]int),
		fail: make(map[string]string),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *stubBackend) key(r *http.Request) string {
	return r.Method + " " + r.URL.Path
}

// hitCount returns how often a route was called, e.g. "GET /admin/users".
func (b *stubBackend) hitCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

// failWith makes one route answer success=false with the given text.
func (b *stubBackend) failWith(key, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[key] = message
}

func (b *stubBackend) clearFailures() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = make(map[string]string)
}

func (b *stubBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	key := b.key(r)
	b.hits[key]++
	failMsg, failing := b.fail[key]
	b.mu.Unlock()

	if failing {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"success": false, "error": %q}`, failMsg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	payload := map[string]interface{}{"success": true}
	switch {
	case r.URL.Path == "/dashboard":
		payload["data"] = models.DashboardSummary{EnrolledCount: 2, TotalUsers: 5}
	case r.URL.Path == "/admin/users":
		payload["users"] = b.users
	case r.URL.Path == "/admin/instructors":
		payload["instructors"] = b.instructors
	case r.URL.Path == "/admin/courses", r.URL.Path == "/courses":
		payload["courses"] = b.courses
	case r.URL.Path == "/courses/my-courses":
		payload["courses"] = b.enrolled
	case r.URL.Path == "/instructor/courses":
		payload["courses"] = b.taught
	case matchSuffix(r.URL.Path, "/students"):
		payload["students"] = b.students
	case matchSuffix(r.URL.Path, "/modules"):
		payload["modules"] = b.modules
	case matchSuffix(r.URL.Path, "/assignments"):
		payload["assignments"] = b.assignments
	case matchSuffix(r.URL.Path, "/announcements"):
		payload["announcements"] = []models.Announcement{}
	case matchSuffix(r.URL.Path, "/analytics"):
		payload["published"] = false
	case r.URL.Path == "/student/profile" && r.Method == http.MethodGet:
		payload["profile"] = b.profile
	case r.URL.Path == "/analyst/overview":
		payload["data"] = models.AnalystOverview{TotalEnrollments: 4}
	case r.URL.Path == "/analyst/courses":
		payload["courses"] = []models.AnalystCourse{}
	case r.URL.Path == "/analyst/insights":
		payload["insights"] = models.Insights{}
	case r.URL.Path == "/analyst/kpis":
		payload["data"] = models.KPIs{TotalRevenue: 1000}
	case r.URL.Path == "/analyst/chart-builder":
		payload["data"] = b.series
	case r.URL.Path == "/analyst/geographic",
		r.URL.Path == "/analyst/age-demographics",
		r.URL.Path == "/analyst/hot-topics",
		r.URL.Path == "/analyst/instructor-workload":
		payload["data"] = []models.ChartPoint{}
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		panic(err)
	}
}

func matchSuffix(path, suffix string) bool {
	return len(path) >= len(suffix) && path[len(path)-len(suffix):] == suffix
}

// notificationRecorder captures every emission in order.
type notificationRecorder struct {
	mu    sync.Mutex
	items []notify.Notification
}

func recordNotifications(center *notify.Center) *notificationRecorder {
	rec := &notificationRecorder{}
	center.Subscribe(func(n notify.Notification) {
		rec.mu.Lock()
		rec.items = append(rec.items, n)
		rec.mu.Unlock()
	})
	return rec
}

func (r *notificationRecorder) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.items...)
}

func newTestClient(b *stubBackend) *client.Client {
	return client.New(b.srv.URL)
}

func courseFormFixture() courseValidator.Form {
	return courseValidator.Form{
		Title:          "Go Basics",
		Level:          "beginner",
		Fees:           "49.99",
		UniversityName: "TU Berlin",
	}
}
