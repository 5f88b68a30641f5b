package gateway

import (
	"context"
	"net/url"
	"strconv"

	"lmscl/internal/models"
)

// SearchJobs queries the off-campus job search: GET /api/offcampus_jobs/.
func (c *Client) SearchJobs(ctx context.Context, f models.JobFilters) ([]models.Job, error) {
	q := url.Values{}
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	if f.Remote {
		q.Set("remote", strconv.FormatBool(f.Remote))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	var jobs []models.Job
	if err := c.get(ctx, "/api/offcampus_jobs/", q, &jobs); err != nil {
		return nil, err
	}
	return nonNil(jobs), nil
}
