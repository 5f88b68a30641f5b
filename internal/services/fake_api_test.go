package services

import (
	"context"
	"encoding/json"
	"errors"

	"lmscl/internal/gateway"
	"lmscl/internal/models"
	"lmscl/internal/viewer"
)

var errBackend = &gateway.APIError{Status: 500, Message: "boom"}

// fakeAPI is an in-memory backend for the service tests.
type fakeAPI struct {
	course    *viewer.Course
	courseErr error
	fetches   int

	cards    []models.CourseCard
	teacherQ string

	blog       *models.Blog
	blogUpdate *models.UpdateBlogRequest

	jobs        []models.Job
	jobFilters  []models.JobFilters
	jobsErr     error
	students    []models.Student
	teachers    []models.Teacher
	hrs         []models.HR
	listErr     error
	writes      []string
	lastPatch   any
	writeErr    error
	lastStudent models.StudentForm
}

func (f *fakeAPI) GetCourse(_ context.Context, id string) (*viewer.Course, error) {
	f.fetches++
	if f.courseErr != nil {
		return nil, f.courseErr
	}
	raw, _ := json.Marshal(f.course)
	var c viewer.Course
	_ = json.Unmarshal(raw, &c)
	return &c, nil
}

func (f *fakeAPI) GetCourses(context.Context) ([]models.CourseCard, error) { return f.cards, f.listErr }
func (f *fakeAPI) GetBlogs(context.Context) ([]models.CourseCard, error)   { return f.cards, f.listErr }

func (f *fakeAPI) GetTeacherCourses(_ context.Context, id string) ([]models.CourseCard, error) {
	f.teacherQ = id
	return f.cards, f.listErr
}

func (f *fakeAPI) GetTeacherBlogs(_ context.Context, id string) ([]models.CourseCard, error) {
	f.teacherQ = id
	return f.cards, f.listErr
}

func (f *fakeAPI) GetBlog(_ context.Context, id string) (*models.Blog, error) {
	if f.blog == nil {
		return nil, &gateway.APIError{Status: 404, Message: "Blog not found"}
	}
	cp := *f.blog
	cp.Chapters = append([]models.BlogChapter(nil), f.blog.Chapters...)
	for i := range cp.Chapters {
		cp.Chapters[i].Contents = append([]models.BlogContent(nil), f.blog.Chapters[i].Contents...)
	}
	return &cp, nil
}

func (f *fakeAPI) UpdateBlog(_ context.Context, id string, req models.UpdateBlogRequest) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.blogUpdate = &req
	return nil
}

func (f *fakeAPI) CreateBlog(_ context.Context, b *models.Blog) (json.RawMessage, error) {
	f.writes = append(f.writes, "create_blog:"+b.Title)
	return json.RawMessage(`{"ok":true}`), f.writeErr
}

func (f *fakeAPI) SearchJobs(_ context.Context, fl models.JobFilters) ([]models.Job, error) {
	f.jobFilters = append(f.jobFilters, fl)
	return f.jobs, f.jobsErr
}

func (f *fakeAPI) ListStudents(context.Context) ([]models.Student, error) { return f.students, f.listErr }
func (f *fakeAPI) ListTeachers(context.Context) ([]models.Teacher, error) { return f.teachers, f.listErr }
func (f *fakeAPI) ListHRs(context.Context) ([]models.HR, error)           { return f.hrs, f.listErr }

func (f *fakeAPI) write(op string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, op)
	return nil
}

func (f *fakeAPI) AddStudent(_ context.Context, form models.StudentForm) error {
	f.lastStudent = form
	return f.write("add_student")
}

func (f *fakeAPI) UpdateStudent(_ context.Context, id string, form models.StudentForm) error {
	f.lastStudent = form
	return f.write("update_student:" + id)
}

func (f *fakeAPI) ArchiveStudent(_ context.Context, id string) error {
	return f.write("archive_student:" + id)
}

func (f *fakeAPI) AddTeacher(context.Context, models.TeacherForm) error { return f.write("add_teacher") }

func (f *fakeAPI) UpdateTeacher(_ context.Context, id string, _ models.TeacherForm) error {
	return f.write("update_teacher:" + id)
}

func (f *fakeAPI) ArchiveTeacher(_ context.Context, id string) error {
	return f.write("archive_teacher:" + id)
}

func (f *fakeAPI) AddHR(context.Context, models.HRForm) error { return f.write("add_hr") }

func (f *fakeAPI) UpdateHR(_ context.Context, id string, patch any) error {
	f.lastPatch = patch
	return f.write("update_hr:" + id)
}

func (f *fakeAPI) ArchiveHR(_ context.Context, id string) error { return f.write("archive_hr:" + id) }

func (f *fakeAPI) CreateCourse(_ context.Context, c *viewer.Course) (json.RawMessage, error) {
	return json.RawMessage(`{"id":"new"}`), f.write("create_course:" + c.Title)
}

func (f *fakeAPI) SaveCourse(_ context.Context, c *viewer.Course) (json.RawMessage, error) {
	return nil, f.write("save_course:" + c.Title)
}

func (f *fakeAPI) UpdateCourse(_ context.Context, id string, c *viewer.Course) (json.RawMessage, error) {
	return nil, f.write("update_course:" + id)
}

var errUnreachable = errors.New("dial tcp: connection refused")
