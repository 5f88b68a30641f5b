package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"lmscl/internal/models"
)

func (c *Client) GetBlogs(ctx context.Context) ([]models.CourseCard, error) {
	var cards []models.CourseCard
	if err := c.get(ctx, "/api/get_blogs/", nil, &cards); err != nil {
		return nil, err
	}
	return NormalizeCards(cards), nil
}

func (c *Client) GetTeacherBlogs(ctx context.Context, teacherID string) ([]models.CourseCard, error) {
	var cards []models.CourseCard
	if err := c.get(ctx, "/api/get_teacher_blogs/"+url.PathEscape(teacherID)+"/", nil, &cards); err != nil {
		return nil, err
	}
	return NormalizeCards(cards), nil
}

func (c *Client) GetBlog(ctx context.Context, blogID string) (*models.Blog, error) {
	var blog models.Blog
	if err := c.get(ctx, "/api/viewblogs/"+url.PathEscape(blogID)+"/", nil, &blog); err != nil {
		return nil, err
	}
	NormalizeBlog(&blog)
	return &blog, nil
}

func (c *Client) UpdateBlog(ctx context.Context, blogID string, req models.UpdateBlogRequest) error {
	return c.put(ctx, "/api/updateblogs/"+url.PathEscape(blogID)+"/", req, nil)
}

func (c *Client) CreateBlog(ctx context.Context, blog *models.Blog) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(ctx, "/api/create_blog/", blog, &out)
	return out, err
}
