package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"lmscl/internal/listing"
	"lmscl/internal/models"
)

const (
	BoardTabAll      = "all"
	BoardTabFullTime = "fulltime"
	BoardTabContract = "contract"
	BoardTabRemote   = "remote"
)

var BoardTabs = []string{BoardTabAll, BoardTabFullTime, BoardTabContract, BoardTabRemote}

// JobBoardService lists the mock HR job postings.
type JobBoardService struct {
	postings []models.JobPosting
	now      func() time.Time
}

func NewJobBoardService() (*JobBoardService, error) {
	var postings []models.JobPosting
	if err := loadFixture("fixtures/jobboard.yaml", &postings); err != nil {
		return nil, err
	}
	sort.SliceStable(postings, func(i, j int) bool { return postings[i].PostedDate.After(postings[j].PostedDate) })
	return &JobBoardService{postings: postings, now: time.Now}, nil
}

func NormalizeBoardTab(tab string) string {
	for _, t := range BoardTabs {
		if t == tab {
			return t
		}
	}
	return BoardTabAll
}

// List applies the search box (title, company, location) and the type tab.
func (s *JobBoardService) List(search, tab string) []models.JobPosting {
	found := listing.Filter(s.postings, search, func(p models.JobPosting) []string {
		return []string{p.Title, p.Company, p.Location}
	})

	out := make([]models.JobPosting, 0, len(found))
	for _, p := range found {
		if matchesBoardTab(p, NormalizeBoardTab(tab)) {
			out = append(out, p)
		}
	}
	return out
}

func matchesBoardTab(p models.JobPosting, tab string) bool {
	switch tab {
	case BoardTabFullTime:
		return p.Type == "Full-time"
	case BoardTabContract:
		return p.Type == "Contract"
	case BoardTabRemote:
		return strings.Contains(strings.ToLower(p.Location), "remote")
	default:
		return true
	}
}

// PostedLabel renders the posting age the way the board shows it.
func (s *JobBoardService) PostedLabel(posted time.Time) string {
	return DaysAgo(s.now(), posted)
}

func DaysAgo(now, posted time.Time) string {
	days := int(now.Sub(posted).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
