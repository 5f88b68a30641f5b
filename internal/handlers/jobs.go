package handlers

import (
	"net/http"
	"strconv"

	"lmscl/internal/models"
	"lmscl/internal/services"
)

type JobsHandler struct {
	pages *Pages
	jobs  *services.JobsService
	board *services.JobBoardService
}

func NewJobsHandler(pages *Pages, jobs *services.JobsService, board *services.JobBoardService) *JobsHandler {
	return &JobsHandler{pages: pages, jobs: jobs, board: board}
}

type country struct {
	Code string
	Name string
}

var countries = []country{
	{"in", "India"},
	{"us", "United States"},
	{"gb", "United Kingdom"},
	{"ca", "Canada"},
	{"de", "Germany"},
	{"sg", "Singapore"},
	{"ae", "United Arab Emirates"},
	{"au", "Australia"},
}

type jobsView struct {
	Filters   models.JobFilters
	Countries []country
	Page      *services.JobsPage
}

// Jobs is the off-campus search. Submitting the filter form (filter=1)
// replaces the filters; page=N moves within the current results.
func (h *JobsHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	q := r.URL.Query()

	if q.Get("filter") == "1" {
		h.jobs.SetFilters(sess, models.JobFilters{
			Country: q.Get("country"),
			Remote:  q.Get("remote") == "true",
			Search:  q.Get("search"),
		})
	}
	page, _ := strconv.Atoi(q.Get("page"))

	data := jobsView{Filters: sess.Jobs.Filters, Countries: countries}
	var errMsg string
	p, err := h.jobs.Load(r.Context(), sess, page)
	if err != nil {
		errMsg = "Failed to load jobs"
	}
	data.Page = p

	h.pages.render(w, r, http.StatusOK, "jobs", view{title: "Off-Campus Jobs", section: "jobs", errMsg: errMsg, data: data})
}

type jobBoardView struct {
	Search   string
	Tab      string
	Postings []models.JobPosting
}

// JobBoard keeps the search box and tab in the session so that coming back
// to the board shows the same list.
func (h *JobsHandler) JobBoard(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	q := r.URL.Query()
	if q.Has("q") {
		sess.JobBoard.Search = q.Get("q")
	}
	if q.Has("tab") {
		sess.JobBoard.Tab = services.NormalizeBoardTab(q.Get("tab"))
	}
	sess.JobBoard.Tab = services.NormalizeBoardTab(sess.JobBoard.Tab)

	h.pages.render(w, r, http.StatusOK, "jobboard", view{
		title:   "Job Board",
		section: "jobboard",
		data: jobBoardView{
			Search:   sess.JobBoard.Search,
			Tab:      sess.JobBoard.Tab,
			Postings: h.board.List(sess.JobBoard.Search, sess.JobBoard.Tab),
		},
	})
}
