package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"lmscl/internal/gateway"
	"lmscl/internal/models"
	"lmscl/internal/services"
	"lmscl/internal/session"
	helpers "lmscl/internal/utils/helpres"
	"lmscl/internal/viewer"

	"github.com/gorilla/mux"
)

type ViewerHandler struct {
	pages   *Pages
	svc     *services.CourseViewerService
	student models.ViewerProfile
}

func NewViewerHandler(pages *Pages, svc *services.CourseViewerService, student models.ViewerProfile) *ViewerHandler {
	return &ViewerHandler{pages: pages, svc: svc, student: student}
}

type courseView struct {
	State     *viewer.State
	CourseID  string
	Chapters  []viewer.Chapter
	Progress  int
	Completed int
	Total     int
	Student   models.ViewerProfile
}

func viewPath(courseID string) string {
	return "/courses/" + url.PathEscape(courseID) + "/view"
}

// Course opens the configured default course.
func (h *ViewerHandler) Course(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, viewPath(h.svc.DefaultCourse()))
}

func (h *ViewerHandler) View(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess := currentSession(r)
	q := r.URL.Query()

	var (
		st  *viewer.State
		err error
	)
	if q.Get("reload") == "1" {
		st, err = h.svc.Reload(r.Context(), sess, id)
	} else {
		st, err = h.svc.Mount(r.Context(), sess, id)
	}

	if err != nil {
		h.pages.render(w, r, http.StatusOK, "course", view{
			title:   "Course",
			section: "course",
			errMsg:  gateway.MessageOf(err, "Failed to load course"),
			data:    courseView{CourseID: id},
		})
		return
	}

	if q.Has("q") {
		st, _ = h.svc.Search(r.Context(), sess, id, q.Get("q"))
	}

	h.pages.render(w, r, http.StatusOK, "course", view{
		title:   st.Course.Title,
		section: "course",
		data: courseView{
			State:     st,
			CourseID:  st.CourseID,
			Chapters:  st.VisibleChapters(),
			Progress:  st.CalculateProgress(),
			Completed: st.CompletedCount(),
			Total:     len(st.Course.Chapters),
			Student:   h.student,
		},
	})
}

// back returns to the viewer, reporting err as a flash when there is one.
func (h *ViewerHandler) back(w http.ResponseWriter, r *http.Request, id string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, services.ErrUnknownChapter):
		currentSession(r).AddFlash(session.FlashError, "Chapter not found")
	case errors.Is(err, services.ErrUnknownTab):
		currentSession(r).AddFlash(session.FlashError, "Unknown tab")
	}
	redirect(w, r, viewPath(id))
}

func (h *ViewerHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, err := h.svc.ToggleSidebar(r.Context(), currentSession(r), id)
	h.back(w, r, id, err)
}

func (h *ViewerHandler) SetTab(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, err := h.svc.SetTab(r.Context(), currentSession(r), id, r.FormValue("tab"))
	h.back(w, r, id, err)
}

func (h *ViewerHandler) ToggleChapter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	_, err := h.svc.ToggleChapter(r.Context(), currentSession(r), vars["id"], vars["chapterID"])
	h.back(w, r, vars["id"], err)
}

// MarkRead is a route of its own so that completing a chapter never
// expands or collapses it.
func (h *ViewerHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	_, err := h.svc.MarkRead(r.Context(), currentSession(r), vars["id"], vars["chapterID"])
	h.back(w, r, vars["id"], err)
}

// WebSearch sends the browser to the external search. An empty term does nothing.
func (h *ViewerHandler) WebSearch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	link, ok, err := h.svc.WebSearch(r.Context(), currentSession(r), id, r.FormValue("term"))
	if err != nil || !ok {
		h.back(w, r, id, err)
		return
	}
	redirect(w, r, link)
}

func (h *ViewerHandler) Notes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess := currentSession(r)

	switch r.FormValue("action") {
	case "clear":
		_, err := h.svc.ClearNotes(r.Context(), sess, id)
		h.back(w, r, id, err)
	case "download":
		st, err := h.svc.SaveNotes(r.Context(), sess, id, r.FormValue("notes"))
		if err != nil {
			h.back(w, r, id, err)
			return
		}
		name, body := st.NotesFile()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	default:
		_, err := h.svc.SaveNotes(r.Context(), sess, id, r.FormValue("notes"))
		if err == nil {
			sess.AddFlash(session.FlashSuccess, "Notes saved")
		}
		h.back(w, r, id, err)
	}
}

// --- JSON ---

type viewerState struct {
	CourseID  string          `json:"course_id"`
	Title     string          `json:"title"`
	Expanded  map[string]bool `json:"expanded"`
	Completed map[string]bool `json:"completed"`
	Progress  int             `json:"progress"`
	ActiveTab viewer.Tab      `json:"active_tab"`
	Sidebar   bool            `json:"sidebar_open"`
}

func toViewerState(st *viewer.State) viewerState {
	return viewerState{
		CourseID:  st.CourseID,
		Title:     st.Course.Title,
		Expanded:  st.Expanded,
		Completed: st.Completed,
		Progress:  st.CalculateProgress(),
		ActiveTab: st.ActiveTab,
		Sidebar:   st.SidebarOpen,
	}
}

func (h *ViewerHandler) reply(w http.ResponseWriter, st *viewer.State, err error) {
	switch {
	case err == nil:
		helpers.JSON(w, http.StatusOK, toViewerState(st))
	case errors.Is(err, services.ErrUnknownChapter), errors.Is(err, services.ErrUnknownTab):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	default:
		backendError(w, err, "Failed to load course")
	}
}

// APIState godoc
// @Summary Course viewer state of this session
// @Tags viewer
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} helpers.Response
// @Failure 502 {object} helpers.Response
// @Router /api/viewer/{courseId} [get]
func (h *ViewerHandler) APIState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Mount(r.Context(), currentSession(r), mux.Vars(r)["courseId"])
	h.reply(w, st, err)
}

// APIToggle godoc
// @Summary Expand or collapse a chapter
// @Tags viewer
// @Produce json
// @Param courseId path string true "Course id"
// @Param chapterId path string true "Chapter id"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/viewer/{courseId}/chapters/{chapterId}/toggle [post]
func (h *ViewerHandler) APIToggle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	st, err := h.svc.ToggleChapter(r.Context(), currentSession(r), vars["courseId"], vars["chapterId"])
	h.reply(w, st, err)
}

// APIRead godoc
// @Summary Toggle the completion of a chapter
// @Tags viewer
// @Produce json
// @Param courseId path string true "Course id"
// @Param chapterId path string true "Chapter id"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/viewer/{courseId}/chapters/{chapterId}/read [post]
func (h *ViewerHandler) APIRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	st, err := h.svc.MarkRead(r.Context(), currentSession(r), vars["courseId"], vars["chapterId"])
	h.reply(w, st, err)
}

type tabRequest struct {
	Tab string `json:"tab"`
}

// APITab godoc
// @Summary Switch the sidebar tab
// @Tags viewer
// @Accept json
// @Produce json
// @Param courseId path string true "Course id"
// @Param input body tabRequest true "outline, info, web or notes"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/viewer/{courseId}/tab [post]
func (h *ViewerHandler) APITab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	st, err := h.svc.SetTab(r.Context(), currentSession(r), mux.Vars(r)["courseId"], req.Tab)
	h.reply(w, st, err)
}
