package services

import (
	"context"

	"lmscl/internal/logger"
	"lmscl/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Overview counts the records behind the admin screens, querying the three
// collections concurrently. Any failure fails the whole overview.
func (s *PeopleService) Overview(ctx context.Context) (models.AdminOverview, error) {
	var out models.AdminOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.api.ListStudents(gctx)
		out.Students = len(list)
		return err
	})
	g.Go(func() error {
		list, err := s.api.ListTeachers(gctx)
		out.Teachers = len(list)
		return err
	})
	g.Go(func() error {
		list, err := s.api.ListHRs(gctx)
		out.HRs = len(list)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithCtx(ctx).Error("people: failed to load overview", zap.Error(err))
		return models.AdminOverview{}, err
	}
	return out, nil
}
