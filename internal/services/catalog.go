package services

import (
	"context"

	"lmscl/internal/listing"
	"lmscl/internal/logger"
	"lmscl/internal/models"

	"go.uber.org/zap"
)

type CatalogAPI interface {
	GetCourses(ctx context.Context) ([]models.CourseCard, error)
	GetBlogs(ctx context.Context) ([]models.CourseCard, error)
	GetTeacherCourses(ctx context.Context, teacherID string) ([]models.CourseCard, error)
	GetTeacherBlogs(ctx context.Context, teacherID string) ([]models.CourseCard, error)
}

type CatalogService struct {
	api CatalogAPI
}

func NewCatalogService(api CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

func cardFields(c models.CourseCard) []string {
	return []string{c.Title, c.Description, c.Instructor}
}

// Courses lists the catalogue, optionally only one teacher's courses, and
// applies the search box.
func (s *CatalogService) Courses(ctx context.Context, teacherID, term string) ([]models.CourseCard, error) {
	var (
		cards []models.CourseCard
		err   error
	)
	if teacherID != "" {
		cards, err = s.api.GetTeacherCourses(ctx, teacherID)
	} else {
		cards, err = s.api.GetCourses(ctx)
	}
	if err != nil {
		logger.WithCtx(ctx).Error("catalog: failed to load courses", zap.String("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	return listing.Filter(cards, term, cardFields), nil
}

func (s *CatalogService) Blogs(ctx context.Context, teacherID, term string) ([]models.CourseCard, error) {
	var (
		cards []models.CourseCard
		err   error
	)
	if teacherID != "" {
		cards, err = s.api.GetTeacherBlogs(ctx, teacherID)
	} else {
		cards, err = s.api.GetBlogs(ctx)
	}
	if err != nil {
		logger.WithCtx(ctx).Error("catalog: failed to load blogs", zap.String("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	return listing.Filter(cards, term, cardFields), nil
}
