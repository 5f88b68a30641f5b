package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"lmscl/internal/gateway"
	"lmscl/internal/handlers"
	"lmscl/internal/render"
	"lmscl/internal/routes"
	"lmscl/internal/services"
	"lmscl/internal/session"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendCourse = `{"_id":"c1","title":"Go Basics","chapters":[
  {"id":"c1-1","title":"Intro","order":1,"contents":[{"id":"i1","type":"text","order":1,"content":"hello gophers"}]},
  {"id":"c1-2","title":"Channels","order":2,"contents":[{"id":"i2","type":"code","order":1,"content":{"code":"ch := make(chan int)"}}]}
]}`

type call struct {
	method string
	path   string
	query  url.Values
	auth   string
	body   string
}

type backend struct {
	mu    sync.Mutex
	calls []call
	srv   *httptest.Server
}

func (b *backend) record(r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call{r.Method, r.URL.Path, r.URL.Query(), r.Header.Get("Authorization"), string(raw)})
}

func (b *backend) last(path string) (call, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.calls) - 1; i >= 0; i-- {
		if b.calls[i].path == path {
			return b.calls[i], true
		}
	}
	return call{}, false
}

func reply(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}

	jobs := make([]string, 13)
	for i := range jobs {
		jobs[i] = fmt.Sprintf(`{"_id":"j%d","job_title":"Job %02d","employer_name":"Acme","days_ago":%d}`, i+1, i+1, i)
	}

	endpoints := map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/get_student_courses/c1/":     reply(200, backendCourse),
		"GET /api/get_student_courses/broken/": reply(500, `{"error":"course service down"}`),
		"GET /api/get_courses/":                reply(200, `[{"_id":"k1","title":"Rust"},{"_id":"k2","title":"Go","teacher_name":"Rob"}]`),
		"GET /api/students": reply(200, `[
			{"_id":"m1","id":1,"username":"alice","email":"alice@example.com","is_active":true},
			{"_id":"m2","id":2,"username":"bob","email":"bob@example.com","is_active":true}]`),
		"DELETE /api/deleted_student/m1": reply(200, `{}`),
		"DELETE /api/deleted_student/m2": reply(500, `{"error":"locked"}`),
		"POST /api/add_student/":         reply(201, `{}`),
		"GET /api/teachers":              reply(200, `[]`),
		"GET /api/hr/":                   reply(200, `[{"_id":"h1","id":5,"hrname":"jane","email":"jane@acme.io","is_active":false}]`),
		"PUT /api/update_hr/h1/":         reply(200, `{}`),
		"GET /api/offcampus_jobs/":       reply(200, "["+strings.Join(jobs, ",")+"]"),
		"GET /lmsai/api/skills/":         reply(200, `["go","sql"]`),
		"POST /api/tests/submit":         reply(200, `{"score":8}`),
	}

	mx := http.NewServeMux()
	for pattern, h := range endpoints {
		h := h
		mx.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			b.record(r)
			h(w, r)
		})
	}
	b.srv = httptest.NewServer(mx)
	t.Cleanup(b.srv.Close)
	return b
}

type harness struct {
	t       *testing.T
	backend *backend
	app     *httptest.Server
	client  *http.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	be := newBackend(t)

	api := gateway.NewClient(be.srv.URL, 2*time.Second)
	renderer, err := render.New()
	require.NoError(t, err)
	dashboard, err := services.NewDashboardService()
	require.NoError(t, err)
	board, err := services.NewJobBoardService()
	require.NoError(t, err)

	pages := handlers.NewPages(renderer, services.NewClock())
	blogs := services.NewBlogService(api)
	h := routes.Handlers{
		Pages:      pages,
		Home:       handlers.NewHomeHandler(),
		Dashboard:  handlers.NewDashboardHandler(pages, dashboard),
		Viewer:     handlers.NewViewerHandler(pages, services.NewCourseViewerService(api, "c1", "https://www.google.com/search"), dashboard.ViewerStudent()),
		Catalog:    handlers.NewCatalogHandler(pages, services.NewCatalogService(api), blogs),
		Jobs:       handlers.NewJobsHandler(pages, services.NewJobsService(api, 6), board),
		People:     handlers.NewPeopleHandler(pages, services.NewPeopleService(api)),
		Assessment: handlers.NewAssessmentHandler(services.NewAssessmentService(api)),
		Authoring:  handlers.NewAuthoringHandler(services.NewCourseAuthoringService(api), blogs),
	}

	store := session.NewMemoryStore(time.Hour, time.Hour)
	t.Cleanup(func() { _ = store.Close() })

	router := mux.NewRouter()
	routes.InitRoutes(router, h, store, session.NewCodec("test-secret", time.Hour, false))
	app := httptest.NewServer(router)
	t.Cleanup(app.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &harness{t: t, backend: be, app: app, client: client}
}

type result struct {
	status int
	header http.Header
	body   string
}

func (h *harness) do(method, path string, body io.Reader, contentType string) result {
	h.t.Helper()
	req, err := http.NewRequest(method, h.app.URL+path, body)
	require.NoError(h.t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := h.client.Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return result{status: resp.StatusCode, header: resp.Header, body: string(raw)}
}

func (h *harness) get(path string) result {
	return h.do(http.MethodGet, path, nil, "")
}

func (h *harness) post(path string, form url.Values) result {
	return h.do(http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (h *harness) postJSON(path, body string) result {
	return h.do(http.MethodPost, path, strings.NewReader(body), "application/json")
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decodeEnvelope(t *testing.T, body string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env), body)
	return env
}

type viewerJSON struct {
	Expanded  map[string]bool `json:"expanded"`
	Completed map[string]bool `json:"completed"`
	Progress  int             `json:"progress"`
	ActiveTab string          `json:"active_tab"`
}

func (h *harness) viewerState(courseID string) viewerJSON {
	h.t.Helper()
	res := h.get("/api/viewer/" + courseID)
	require.Equal(h.t, http.StatusOK, res.status, res.body)
	var st viewerJSON
	require.NoError(h.t, json.Unmarshal(decodeEnvelope(h.t, res.body).Data, &st))
	return st
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	res := h.get("/health")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, res.body)
	assert.NotEmpty(t, res.header.Get("X-Request-ID"))
}

func TestViewerMountsAndExpandsFirstChapter(t *testing.T) {
	h := newHarness(t)

	res := h.get("/course")
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/courses/c1/view", res.header.Get("Location"))

	res = h.get("/courses/c1/view")
	require.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "Go Basics")
	assert.Contains(t, res.body, "hello gophers")
	assert.Contains(t, res.body, "0 of 2 chapters completed")

	st := h.viewerState("c1")
	assert.Equal(t, map[string]bool{"c1-1": true}, st.Expanded)
	assert.Equal(t, "outline", st.ActiveTab)
}

func TestMarkReadKeepsExpansion(t *testing.T) {
	h := newHarness(t)
	h.get("/courses/c1/view")

	res := h.post("/courses/c1/view/chapters/c1-2/read", nil)
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/courses/c1/view", res.header.Get("Location"))

	st := h.viewerState("c1")
	assert.Equal(t, map[string]bool{"c1-2": true}, st.Completed)
	assert.Equal(t, map[string]bool{"c1-1": true}, st.Expanded)
	assert.Equal(t, 50, st.Progress)

	res = h.postJSON("/api/viewer/c1/chapters/c1-2/toggle", "")
	require.Equal(t, http.StatusOK, res.status)
	st = h.viewerState("c1")
	assert.Equal(t, map[string]bool{"c1-1": true, "c1-2": true}, st.Expanded)

	res = h.postJSON("/api/viewer/c1/chapters/c1-2/read", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, 0, h.viewerState("c1").Progress)
}

func TestViewerRejectsUnknownChapterAndTab(t *testing.T) {
	h := newHarness(t)

	res := h.postJSON("/api/viewer/c1/chapters/ghost/toggle", "")
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = h.postJSON("/api/viewer/c1/tab", `{"tab":"settings"}`)
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = h.postJSON("/api/viewer/c1/tab", `{"tab":"notes"}`)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "notes", h.viewerState("c1").ActiveTab)
}

func TestViewerLoadFailureShowsRetry(t *testing.T) {
	h := newHarness(t)

	res := h.get("/courses/broken/view")
	require.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "course service down")
	assert.Contains(t, res.body, "/courses/broken/view?reload=1")

	res = h.get("/api/viewer/broken")
	assert.Equal(t, http.StatusBadGateway, res.status)
	assert.Equal(t, "course service down", decodeEnvelope(t, res.body).Error)
}

func TestNotesDownload(t *testing.T) {
	h := newHarness(t)

	res := h.post("/courses/c1/view/notes", url.Values{"action": {"download"}, "notes": {"select blocks"}})
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, `attachment; filename="course-notes.txt"`, res.header.Get("Content-Disposition"))
	assert.Equal(t, "select blocks", res.body)

	res = h.post("/courses/c1/view/notes", url.Values{"action": {"clear"}})
	assert.Equal(t, http.StatusSeeOther, res.status)
	res = h.get("/courses/c1/view")
	assert.NotContains(t, res.body, "select blocks")
}

func TestWebSearch(t *testing.T) {
	h := newHarness(t)

	res := h.post("/courses/c1/view/websearch", url.Values{"term": {"channels"}})
	require.Equal(t, http.StatusSeeOther, res.status)
	loc, err := url.Parse(res.header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", loc.Host)
	assert.Equal(t, "channels Go Basics", loc.Query().Get("q"))

	res = h.post("/courses/c1/view/websearch", url.Values{"term": {"  "}})
	assert.Equal(t, "/courses/c1/view", res.header.Get("Location"))
}

func TestArchiveStudentFlash(t *testing.T) {
	h := newHarness(t)

	res := h.post("/admin/students/m1/archive", nil)
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/admin/students", res.header.Get("Location"))
	assert.Contains(t, h.get("/admin/students").body, "Student archived successfully")

	h.post("/admin/students/m2/archive", nil)
	page := h.get("/admin/students").body
	assert.Contains(t, page, "Failed to archive student")
	assert.NotContains(t, page, "Student archived successfully", "flash is shown once")
}

func TestStudentSearchAndEdit(t *testing.T) {
	h := newHarness(t)

	page := h.get("/admin/students?q=BOB").body
	assert.Contains(t, page, "bob@example.com")
	assert.NotContains(t, page, "alice@example.com")

	page = h.get("/admin/students?edit=m1").body
	assert.Contains(t, page, "/admin/students/m1/edit")
	assert.Contains(t, page, `value="alice"`)
}

func TestAddStudentValidation(t *testing.T) {
	h := newHarness(t)

	res := h.post("/admin/students/add", url.Values{"username": {"al"}, "email": {"not-an-email"}})
	assert.Equal(t, http.StatusUnprocessableEntity, res.status)
	assert.Contains(t, res.body, "username must be at least 3 characters in length")
	_, called := h.backend.last("/api/add_student/")
	assert.False(t, called, "invalid forms never reach the backend")

	res = h.post("/admin/students/add", url.Values{"username": {"carol"}, "email": {"carol@example.com"}, "is_active": {"true"}})
	assert.Equal(t, http.StatusSeeOther, res.status)
	c, called := h.backend.last("/api/add_student/")
	require.True(t, called)
	assert.JSONEq(t, `{"username":"carol","email":"carol@example.com","is_active":true}`, c.body)
}

func TestToggleHR(t *testing.T) {
	h := newHarness(t)

	res := h.post("/admin/hrs/h1/toggle", nil)
	assert.Equal(t, http.StatusSeeOther, res.status)

	c, called := h.backend.last("/api/update_hr/h1/")
	require.True(t, called)
	assert.Equal(t, http.MethodPut, c.method)
	assert.JSONEq(t, `{"is_active":true}`, c.body)
	assert.Contains(t, h.get("/admin/hrs").body, "HR activated successfully")
}

func TestAdminOverview(t *testing.T) {
	h := newHarness(t)
	page := h.get("/admin").body
	assert.Contains(t, page, "<strong>2</strong>")
	assert.Contains(t, page, "<strong>1</strong>")
}

func TestJobsPaging(t *testing.T) {
	h := newHarness(t)

	page := h.get("/jobs").body
	assert.Contains(t, page, "Job 06")
	assert.NotContains(t, page, "Job 07")

	page = h.get("/jobs?page=3").body
	assert.Contains(t, page, "Job 13")

	page = h.get("/jobs?page=4").body
	assert.Contains(t, page, "Job 13", "out of range keeps the current page")

	page = h.get("/jobs?filter=1&search=go&remote=true&country=in").body
	assert.Contains(t, page, "Job 01", "new filters go back to page 1")
	c, _ := h.backend.last("/api/offcampus_jobs/")
	assert.Equal(t, "go", c.query.Get("search"))
	assert.Equal(t, "true", c.query.Get("remote"))
	assert.Equal(t, "in", c.query.Get("country"))
}

func TestCoursesSearch(t *testing.T) {
	h := newHarness(t)
	page := h.get("/courses?q=rob").body
	assert.Contains(t, page, "/courses/k2/view")
	assert.NotContains(t, page, "/courses/k1/view")
}

func TestSectionsAndHome(t *testing.T) {
	h := newHarness(t)

	res := h.get("/")
	assert.Equal(t, "/dashboard", res.header.Get("Location"))

	res = h.get("/section/jobboard")
	assert.Equal(t, "/hr/jobs", res.header.Get("Location"))
	res = h.get("/")
	assert.Equal(t, "/hr/jobs", res.header.Get("Location"))

	res = h.get("/section/settings")
	assert.Equal(t, "/dashboard", res.header.Get("Location"))
}

func TestTokenIsForwardedUntilLogout(t *testing.T) {
	h := newHarness(t)

	res := h.postJSON("/api/session/token", `{"token":"abc"}`)
	require.Equal(t, http.StatusOK, res.status)

	h.get("/courses")
	c, _ := h.backend.last("/api/get_courses/")
	assert.Equal(t, "Bearer abc", c.auth)

	res = h.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, res.status)

	h.get("/courses")
	c, _ = h.backend.last("/api/get_courses/")
	assert.Empty(t, c.auth)
}

func TestAssessmentPassThrough(t *testing.T) {
	h := newHarness(t)

	res := h.get("/api/skills")
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `["go","sql"]`, string(decodeEnvelope(t, res.body).Data))

	res = h.postJSON("/api/tests/t9/submit", `{"studentId":"s1","answers":{"q1":"b"},"timeSpent":42}`)
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"score":8}`, string(decodeEnvelope(t, res.body).Data))
	c, called := h.backend.last("/api/tests/submit")
	require.True(t, called)
	assert.JSONEq(t, `{"testId":"t9","studentId":"s1","answers":{"q1":"b"},"timeSpent":42}`, c.body)

	res = h.postJSON("/api/assessments/generate", `{"prompt":"  "}`)
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = h.postJSON("/api/assessments/generate", `{`)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestUnknownRoutes(t *testing.T) {
	h := newHarness(t)

	res := h.get("/api/nope")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "not found", decodeEnvelope(t, res.body).Error)

	res = h.get("/nope")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Contains(t, res.body, "Page not found")
}

func TestDashboardShowsClock(t *testing.T) {
	h := newHarness(t)
	page := h.get("/dashboard").body
	assert.Contains(t, page, "Welcome back, Naveen")
	assert.Regexp(t, `class="clock"[^>]*>\d\d:\d\d<`, page)
}
