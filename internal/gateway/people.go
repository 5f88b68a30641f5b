package gateway

import (
	"context"
	"net/url"

	"lmscl/internal/models"
)

func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	if err := c.get(ctx, "/api/students", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Client) AddStudent(ctx context.Context, form models.StudentForm) error {
	return c.post(ctx, "/api/add_student/", form, nil)
}

func (c *Client) UpdateStudent(ctx context.Context, id string, form models.StudentForm) error {
	return c.put(ctx, "/api/updated_student/"+url.PathEscape(id), form, nil)
}

func (c *Client) ArchiveStudent(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/deleted_student/"+url.PathEscape(id), nil)
}

func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	if err := c.get(ctx, "/api/teachers", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Client) AddTeacher(ctx context.Context, form models.TeacherForm) error {
	return c.post(ctx, "/api/add_teacher/", form, nil)
}

func (c *Client) UpdateTeacher(ctx context.Context, id string, form models.TeacherForm) error {
	return c.put(ctx, "/api/updated_teacher/"+url.PathEscape(id), form, nil)
}

func (c *Client) ArchiveTeacher(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/deleted_teacher/"+url.PathEscape(id), nil)
}

func (c *Client) ListHRs(ctx context.Context) ([]models.HR, error) {
	var out []models.HR
	if err := c.get(ctx, "/api/hr/", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Client) AddHR(ctx context.Context, form models.HRForm) error {
	return c.post(ctx, "/api/add_hr/", form, nil)
}

// UpdateHR sends a partial document; the active toggle sends only is_active.
func (c *Client) UpdateHR(ctx context.Context, id string, patch any) error {
	return c.put(ctx, "/api/update_hr/"+url.PathEscape(id)+"/", patch, nil)
}

func (c *Client) ArchiveHR(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/delete_hr/"+url.PathEscape(id)+"/", nil)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
