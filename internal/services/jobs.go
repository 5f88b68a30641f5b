package services

import (
	"context"
	"strings"

	"lmscl/internal/listing"
	"lmscl/internal/logger"
	"lmscl/internal/models"
	"lmscl/internal/session"

	"go.uber.org/zap"
)

type JobSearcher interface {
	SearchJobs(ctx context.Context, f models.JobFilters) ([]models.Job, error)
}

// JobsPage is one rendered window of the off-campus job search.
type JobsPage struct {
	Jobs    []models.Job
	Filters models.JobFilters
	Pager   listing.Pager
}

type JobsService struct {
	api      JobSearcher
	pageSize int
}

func NewJobsService(api JobSearcher, pageSize int) *JobsService {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &JobsService{api: api, pageSize: pageSize}
}

func normalizeFilters(f models.JobFilters) models.JobFilters {
	f.Country = strings.TrimSpace(f.Country)
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// SetFilters stores new filters in the session. A change resets the page to 1.
func (s *JobsService) SetFilters(sess *session.Session, f models.JobFilters) bool {
	f = normalizeFilters(f)
	if f == sess.Jobs.Filters {
		return false
	}
	sess.Jobs.Filters = f
	sess.Jobs.Page = 1
	return true
}

// Load fetches the jobs for the session filters and windows them at the
// requested page. A page outside 1..TotalPages keeps the current one.
func (s *JobsService) Load(ctx context.Context, sess *session.Session, page int) (*JobsPage, error) {
	filters := sess.Jobs.Filters
	jobs, err := s.api.SearchJobs(ctx, filters)
	if err != nil {
		logger.WithCtx(ctx).Error("jobs: failed to load",
			zap.String("country", filters.Country),
			zap.Bool("remote", filters.Remote),
			zap.String("search", filters.Search),
			zap.Error(err),
		)
		return nil, err
	}

	p := listing.NewPager(s.pageSize, len(jobs))
	if !p.GoTo(sess.Jobs.Page) {
		p.Reset(len(jobs))
	}
	if page != 0 && !p.GoTo(page) {
		logger.WithCtx(ctx).Debug("jobs: page out of range ignored", zap.Int("page", page), zap.Int("total_pages", p.TotalPages()))
	}
	sess.Jobs.Page = p.Page

	return &JobsPage{
		Jobs:    listing.Window(jobs, p),
		Filters: filters,
		Pager:   p,
	}, nil
}
