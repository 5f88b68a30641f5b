package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"lmscl/internal/models"
	"lmscl/internal/viewer"
)

// GetCourse fetches the full course document: GET /api/get_student_courses/{id}/.
func (c *Client) GetCourse(ctx context.Context, courseID string) (*viewer.Course, error) {
	var course viewer.Course
	if err := c.get(ctx, "/api/get_student_courses/"+url.PathEscape(courseID)+"/", nil, &course); err != nil {
		return nil, err
	}
	course.Normalize()
	return &course, nil
}

// GetCourses lists the catalogue: GET /api/get_courses/.
func (c *Client) GetCourses(ctx context.Context) ([]models.CourseCard, error) {
	var cards []models.CourseCard
	if err := c.get(ctx, "/api/get_courses/", nil, &cards); err != nil {
		return nil, err
	}
	return NormalizeCards(cards), nil
}

func (c *Client) GetTeacherCourses(ctx context.Context, teacherID string) ([]models.CourseCard, error) {
	var cards []models.CourseCard
	if err := c.get(ctx, "/api/get_teacher_courses/"+url.PathEscape(teacherID)+"/", nil, &cards); err != nil {
		return nil, err
	}
	return NormalizeCards(cards), nil
}

// CreateCourse posts a course draft: POST /api/create_course.
func (c *Client) CreateCourse(ctx context.Context, course *viewer.Course) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/create_course", course, &out)
	return out, err
}

// SaveCourse: POST /api/save_course.
func (c *Client) SaveCourse(ctx context.Context, course *viewer.Course) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/save_course", course, &out)
	return out, err
}

// UpdateCourse: PUT /api/updatecourses/{id}/.
func (c *Client) UpdateCourse(ctx context.Context, courseID string, course *viewer.Course) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.put(ctx, "/api/updatecourses/"+url.PathEscape(courseID)+"/", course, &out)
	return out, err
}
