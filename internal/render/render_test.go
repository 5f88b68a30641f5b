package render

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lmscl/internal/models"
	"lmscl/internal/services"
	"lmscl/internal/session"
	"lmscl/internal/viewer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func renderPage(t *testing.T, r *Renderer, page string, p Page) string {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, r.HTML(rec, http.StatusOK, page, p))
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	return rec.Body.String()
}

func TestAllPagesParse(t *testing.T) {
	r := newRenderer(t)
	for _, page := range []string{
		"dashboard", "profile", "courses", "blogs", "blog", "course",
		"jobs", "jobboard", "admin", "students", "teachers", "hrs", "error",
	} {
		assert.True(t, r.Has(page), page)
	}
	assert.False(t, r.Has("layout"))
}

func TestUnknownPage(t *testing.T) {
	r := newRenderer(t)
	err := r.HTML(httptest.NewRecorder(), http.StatusOK, "nope", Page{})
	assert.Error(t, err)
}

func TestLayoutShowsClockFlashAndActiveSection(t *testing.T) {
	r := newRenderer(t)
	out := renderPage(t, r, "admin", Page{
		Title:   "Admin",
		Section: "admin",
		Clock:   "09:41",
		Flash:   &session.Flash{Kind: session.FlashSuccess, Message: "Student archived successfully"},
		Data:    models.AdminOverview{Students: 12, Teachers: 3, HRs: 2},
	})

	assert.Contains(t, out, "09:41")
	assert.Contains(t, out, "Student archived successfully")
	assert.Contains(t, out, `href="/section/admin" class="active"`)
	assert.Contains(t, out, "<strong>12</strong>")
}

func TestDashboardAndProfile(t *testing.T) {
	r := newRenderer(t)
	svc, err := services.NewDashboardService()
	require.NoError(t, err)

	out := renderPage(t, r, "dashboard", Page{Title: "Dashboard", Data: struct {
		Dashboard models.Dashboard
		WeekDays  []string
	}{svc.Dashboard(), services.WeekDays()}})
	assert.Contains(t, out, "Welcome back, Naveen")
	assert.Contains(t, out, "Current Streak: 3 days")

	out = renderPage(t, r, "profile", Page{Title: "Profile", Data: svc.Profile()})
	assert.Contains(t, out, "Naveen Kumar")
	assert.Contains(t, out, "Advanced")
}

type courseView struct {
	State     *viewer.State
	CourseID  string
	Chapters  []viewer.Chapter
	Progress  int
	Completed int
	Total     int
	Student   models.ViewerProfile
}

const playerCourse = `{"_id":"c","title":"Go Basics","chapters":[
  {"id":"c1","title":"Intro","order":1,"contents":[{"id":"i1","type":"text","order":1,"content":"hello"}]},
  {"id":"c2","title":"Channels","order":2,"contents":[{"id":"i2","type":"quiz","order":1,"content":{}}]}
]}`

func TestCoursePage(t *testing.T) {
	r := newRenderer(t)
	var c viewer.Course
	require.NoError(t, json.Unmarshal([]byte(playerCourse), &c))
	st := viewer.New("c", &c)
	st.MarkChapterAsRead("c2")

	out := renderPage(t, r, "course", Page{Title: "Course", Data: courseView{
		State:     st,
		CourseID:  "c",
		Chapters:  st.VisibleChapters(),
		Progress:  st.CalculateProgress(),
		Completed: st.CompletedCount(),
		Total:     len(st.Course.Chapters),
	}})

	assert.Contains(t, out, "1 of 2 chapters completed · 50%")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "/courses/c/view/chapters/c2/read")
	assert.Contains(t, out, "Completed ✓")
	// c2 is collapsed, so its unsupported block is not rendered
	assert.NotContains(t, out, "Unsupported content type")
}

func TestCoursePageWithoutState(t *testing.T) {
	r := newRenderer(t)
	out := renderPage(t, r, "course", Page{
		Title: "Course",
		Error: "Failed to load course",
		Data:  courseView{CourseID: "c"},
	})
	assert.Contains(t, out, "Failed to load course")
	assert.Contains(t, out, "/courses/c/view?reload=1")
}

func TestStudentsPage(t *testing.T) {
	r := newRenderer(t)
	active := true
	data := struct {
		Search    string
		Items     []models.Student
		Adding    bool
		Editing   *models.Student
		Form      models.StudentForm
		FormError string
	}{
		Search:    "ali",
		Items:     []models.Student{{MongoID: "m1", ID: 7, Username: "alice", FirstName: "Alice", IsActive: true}},
		Adding:    true,
		Form:      models.StudentForm{Username: "bob", IsActive: &active},
		FormError: "email is a required field",
	}

	out := renderPage(t, r, "students", Page{Title: "Students", Data: data})
	assert.Contains(t, out, "/admin/students/m1/archive")
	assert.Contains(t, out, "/admin/students/add")
	assert.Contains(t, out, "email is a required field")
	assert.Contains(t, out, `value="bob"`)
	assert.Contains(t, out, `value="ali"`)
}

func TestHRsPage(t *testing.T) {
	r := newRenderer(t)
	data := struct {
		Search    string
		Items     []models.HR
		Adding    bool
		Editing   *models.HR
		Form      models.HRForm
		FormError string
	}{
		Items: []models.HR{{MongoID: "h1", HRName: "jane", FirstName: "Jane", LastName: "Roe", CompanyName: "Acme"}},
	}

	out := renderPage(t, r, "hrs", Page{Title: "HR", Data: data})
	assert.Contains(t, out, "/admin/hrs/h1/toggle")
	assert.Contains(t, out, "Inactive")
	assert.Contains(t, out, "JR")
	assert.NotContains(t, out, "/admin/hrs/add")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "Advanced", Title("advanced"))
	assert.Equal(t, "NK", Initials("naveen kumar"))
	assert.Equal(t, "JD", Initials("John  Doe Smith"))
	assert.Equal(t, "?", Initials("  "))
	assert.Equal(t, "Ann Lee", FullName("Ann", "Lee", "ann"))
	assert.Equal(t, "ann", FullName("", "", "ann"))

	path, ok := SectionPath("jobboard")
	assert.True(t, ok)
	assert.Equal(t, "/hr/jobs", path)
	path, ok = SectionPath("settings")
	assert.False(t, ok)
	assert.Equal(t, "/dashboard", path)
}
