package services

import (
	"context"
	"encoding/json"
	"strings"

	"lmscl/internal/logger"
	"lmscl/internal/viewer"

	"go.uber.org/zap"
)

type CourseWriter interface {
	CreateCourse(ctx context.Context, course *viewer.Course) (json.RawMessage, error)
	SaveCourse(ctx context.Context, course *viewer.Course) (json.RawMessage, error)
	UpdateCourse(ctx context.Context, courseID string, course *viewer.Course) (json.RawMessage, error)
}

// CourseAuthoringService forwards course documents written by teachers.
type CourseAuthoringService struct {
	api CourseWriter
}

func NewCourseAuthoringService(api CourseWriter) *CourseAuthoringService {
	return &CourseAuthoringService{api: api}
}

func checkCourse(c *viewer.Course) error {
	if c == nil || strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	c.Normalize()
	return nil
}

func (s *CourseAuthoringService) Create(ctx context.Context, c *viewer.Course) (json.RawMessage, error) {
	if err := checkCourse(c); err != nil {
		return nil, err
	}
	out, err := s.api.CreateCourse(ctx, c)
	if err != nil {
		logger.WithCtx(ctx).Error("authoring: failed to create course", zap.String("title", c.Title), zap.Error(err))
		return nil, err
	}
	logger.WithCtx(ctx).Info("authoring: course created", zap.String("title", c.Title), zap.Int("chapters", len(c.Chapters)))
	return out, nil
}

func (s *CourseAuthoringService) Save(ctx context.Context, c *viewer.Course) (json.RawMessage, error) {
	if err := checkCourse(c); err != nil {
		return nil, err
	}
	out, err := s.api.SaveCourse(ctx, c)
	if err != nil {
		logger.WithCtx(ctx).Error("authoring: failed to save course", zap.String("title", c.Title), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (s *CourseAuthoringService) Update(ctx context.Context, id string, c *viewer.Course) (json.RawMessage, error) {
	if err := checkCourse(c); err != nil {
		return nil, err
	}
	out, err := s.api.UpdateCourse(ctx, id, c)
	if err != nil {
		logger.WithCtx(ctx).Error("authoring: failed to update course", zap.String("course_id", id), zap.Error(err))
		return nil, err
	}
	logger.WithCtx(ctx).Info("authoring: course updated", zap.String("course_id", id))
	return out, nil
}
