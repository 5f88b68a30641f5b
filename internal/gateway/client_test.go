package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lmscl/internal/models"
	"lmscl/internal/reqctx"
	"lmscl/internal/viewer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]any
}

func newTestClient(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second), rec
}

func TestGetCourse(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"title":"Go","chapters":[
		{"id":"b","order":2,"contents":[]},
		{"id":"a","order":1,"contents":[{"id":"x","type":"text","order":1,"content":"hi"}]}
	]}`)

	ctx := reqctx.WithAuthToken(context.Background(), "tok")
	course, err := c.GetCourse(ctx, "680722091c717f2f59d41dac")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/get_student_courses/680722091c717f2f59d41dac/", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)
	require.Len(t, course.Chapters, 2)
	assert.Equal(t, "a", course.Chapters[0].ID)
	assert.Equal(t, viewer.TextContent{Text: "hi"}, course.Chapters[0].Contents[0].Content)
}

func TestNoTokenNoAuthorization(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `[]`)
	_, err := c.ListTeachers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.auth)
}

func TestAPIErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error_message", `{"error_message":"Invalid credentials"}`, "Invalid credentials"},
		{"error", `{"error":"Student not found"}`, "Student not found"},
		{"message", `{"message":"nope"}`, "nope"},
		{"plain text", `upstream down`, "upstream down"},
		{"html", `<html>oops</html>`, "502 Bad Gateway"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.StatusBadGateway, tc.body)
			err := c.ArchiveStudent(context.Background(), "s1")
			require.Error(t, err)
			assert.Equal(t, http.StatusBadGateway, StatusOf(err))
			assert.Equal(t, tc.want, MessageOf(err, "fallback"))
		})
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.GetCourses(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.Equal(t, "Failed to load courses", MessageOf(err, "Failed to load courses"))
}

func TestPeopleEndpoints(t *testing.T) {
	active := false
	cases := []struct {
		name   string
		call   func(c *Client) error
		method string
		path   string
	}{
		{"add student", func(c *Client) error {
			return c.AddStudent(context.Background(), models.StudentForm{Username: "ann", Email: "a@x.io"})
		}, http.MethodPost, "/api/add_student/"},
		{"update student", func(c *Client) error {
			return c.UpdateStudent(context.Background(), "s1", models.StudentForm{Username: "ann"})
		}, http.MethodPut, "/api/updated_student/s1"},
		{"archive student", func(c *Client) error { return c.ArchiveStudent(context.Background(), "s1") }, http.MethodDelete, "/api/deleted_student/s1"},
		{"add teacher", func(c *Client) error {
			return c.AddTeacher(context.Background(), models.TeacherForm{Username: "tom"})
		}, http.MethodPost, "/api/add_teacher/"},
		{"update teacher", func(c *Client) error {
			return c.UpdateTeacher(context.Background(), "t1", models.TeacherForm{Username: "tom"})
		}, http.MethodPut, "/api/updated_teacher/t1"},
		{"archive teacher", func(c *Client) error { return c.ArchiveTeacher(context.Background(), "t1") }, http.MethodDelete, "/api/deleted_teacher/t1"},
		{"add hr", func(c *Client) error {
			return c.AddHR(context.Background(), models.HRForm{HRName: "hana"})
		}, http.MethodPost, "/api/add_hr/"},
		{"toggle hr", func(c *Client) error {
			return c.UpdateHR(context.Background(), "h1", models.HRForm{IsActive: &active})
		}, http.MethodPut, "/api/update_hr/h1/"},
		{"archive hr", func(c *Client) error { return c.ArchiveHR(context.Background(), "h1") }, http.MethodDelete, "/api/delete_hr/h1/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, `{"message":"ok"}`)
			require.NoError(t, tc.call(c))
			assert.Equal(t, tc.method, rec.method)
			assert.Equal(t, tc.path, rec.path)
		})
	}
}

func TestUpdateHRSendsOnlyActiveFlag(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)
	active := false
	require.NoError(t, c.UpdateHR(context.Background(), "h1", models.HRForm{IsActive: &active}))
	assert.Equal(t, map[string]any{"is_active": false}, rec.body)
}

func TestSearchJobsQuery(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `null`)
	jobs, err := c.SearchJobs(context.Background(), models.JobFilters{Country: "in", Remote: true, Search: "go dev"})
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Equal(t, "/api/offcampus_jobs/", rec.path)
	assert.Equal(t, "country=in&remote=true&search=go+dev", rec.query)
}

func TestTestEndpoints(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"score":3}`)
	out, err := c.SubmitTest(context.Background(), TestSubmission{TestID: "t", StudentID: "s", Answers: map[string]string{"q1": "a"}, TimeSpent: 40})
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":3}`, string(out))
	assert.Equal(t, "/api/tests/submit", rec.path)
	assert.Equal(t, "t", rec.body["testId"])
	assert.Equal(t, float64(40), rec.body["timeSpent"])

	_, err = c.StudentTests(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"student_id": nil}, rec.body)
}
