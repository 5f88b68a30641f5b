package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"lmscl/internal/logger"
	"lmscl/internal/models"
	"lmscl/internal/viewer"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type BlogAPI interface {
	GetBlog(ctx context.Context, blogID string) (*models.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, req models.UpdateBlogRequest) error
	CreateBlog(ctx context.Context, blog *models.Blog) (json.RawMessage, error)
}

var ErrEmptyTitle = errors.New("title is required")

// BlogEdit is what the blog editor submits. Contents maps content item ids
// to their new text.
type BlogEdit struct {
	Title         string
	Description   string
	Category      string
	FeaturedImage string
	Tags          []string
	IsPublished   bool
	Contents      map[string]string
}

type BlogService struct {
	api    BlogAPI
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewBlogService(api BlogAPI) *BlogService {
	return &BlogService{
		api:    api,
		policy: bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.api.GetBlog(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Error("blog: failed to load", zap.String("blog_id", id), zap.Error(err))
		return nil, err
	}
	sortBlog(blog)
	return blog, nil
}

// Update merges the edit into the current document and writes it back. The
// backend expects the full document again as a JSON string.
func (s *BlogService) Update(ctx context.Context, id string, edit BlogEdit) (*models.Blog, error) {
	log := logger.WithCtx(ctx).With(zap.String("blog_id", id))

	if strings.TrimSpace(edit.Title) == "" {
		return nil, ErrEmptyTitle
	}

	blog, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.apply(blog, edit)

	req, err := BuildBlogUpdate(blog)
	if err != nil {
		return nil, err
	}
	if err := s.api.UpdateBlog(ctx, id, req); err != nil {
		log.Error("blog: failed to save", zap.Error(err))
		return nil, err
	}

	log.Info("blog: saved", zap.String("title", blog.Title), zap.Bool("published", blog.IsPublished))
	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, blog *models.Blog) (json.RawMessage, error) {
	if strings.TrimSpace(blog.Title) == "" {
		return nil, ErrEmptyTitle
	}
	blog.Description = s.strict.Sanitize(blog.Description)
	if blog.Category == "" {
		blog.Category = "General"
	}
	out, err := s.api.CreateBlog(ctx, blog)
	if err != nil {
		logger.WithCtx(ctx).Error("blog: failed to create", zap.String("title", blog.Title), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (s *BlogService) apply(blog *models.Blog, edit BlogEdit) {
	blog.Title = strings.TrimSpace(edit.Title)
	blog.Description = s.strict.Sanitize(edit.Description)
	blog.Category = strings.TrimSpace(edit.Category)
	blog.FeaturedImage = strings.TrimSpace(edit.FeaturedImage)
	blog.IsPublished = edit.IsPublished
	if edit.Tags != nil {
		blog.Tags = edit.Tags
	}

	for ci := range blog.Chapters {
		for ii := range blog.Chapters[ci].Contents {
			item := &blog.Chapters[ci].Contents[ii]
			text, ok := edit.Contents[item.ID]
			if !ok {
				continue
			}
			if item.Type == string(viewer.TypeText) {
				text = s.policy.Sanitize(text)
			}
			item.Content = text
		}
	}
}

// BuildBlogUpdate produces the update payload, defaulting the category.
func BuildBlogUpdate(blog *models.Blog) (models.UpdateBlogRequest, error) {
	raw, err := json.Marshal(blog)
	if err != nil {
		return models.UpdateBlogRequest{}, fmt.Errorf("encode blog: %w", err)
	}
	tags := blog.Tags
	if tags == nil {
		tags = []string{}
	}
	category := blog.Category
	if category == "" {
		category = "General"
	}
	return models.UpdateBlogRequest{
		BlogDataJSON:  string(raw),
		Title:         blog.Title,
		Description:   blog.Description,
		AuthorID:      blog.AuthorID,
		Tags:          tags,
		IsPublished:   blog.IsPublished,
		FeaturedImage: blog.FeaturedImage,
		Category:      category,
	}, nil
}

// BlogContentItems converts a blog chapter's string payloads into renderable items.
func BlogContentItems(ch models.BlogChapter) []viewer.ContentItem {
	items := make([]viewer.ContentItem, 0, len(ch.Contents))
	for _, c := range ch.Contents {
		raw, _ := json.Marshal(c.Content)
		items = append(items, viewer.NewContentItem(c.ID, c.Type, c.Order, raw))
	}
	return items
}

func sortBlog(b *models.Blog) {
	sort.SliceStable(b.Chapters, func(i, j int) bool { return b.Chapters[i].Order < b.Chapters[j].Order })
	for i := range b.Chapters {
		contents := b.Chapters[i].Contents
		sort.SliceStable(contents, func(a, c int) bool { return contents[a].Order < contents[c].Order })
	}
}
