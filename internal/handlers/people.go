package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"lmscl/internal/models"
	"lmscl/internal/services"
	"lmscl/internal/session"

	"github.com/gorilla/mux"
)

// PeopleHandler serves the admin screens for students, teachers and HRs.
// The three screens behave the same way and differ only in their record and
// form types, so each one is a roster.
type PeopleHandler struct {
	pages    *Pages
	svc      *services.PeopleService
	students roster[models.Student, models.StudentForm]
	teachers roster[models.Teacher, models.TeacherForm]
	hrs      roster[models.HR, models.HRForm]
}

func NewPeopleHandler(pages *Pages, svc *services.PeopleService) *PeopleHandler {
	return &PeopleHandler{
		pages: pages,
		svc:   svc,
		students: roster[models.Student, models.StudentForm]{
			pages: pages, page: "students", base: "/admin/students", title: "Students", noun: "student", label: "Student",
			list: svc.Students, get: svc.Student, add: svc.AddStudent, update: svc.UpdateStudent, archive: svc.ArchiveStudent,
			fromForm: studentFormFromValues, toForm: studentFormOf,
		},
		teachers: roster[models.Teacher, models.TeacherForm]{
			pages: pages, page: "teachers", base: "/admin/teachers", title: "Teachers", noun: "teacher", label: "Teacher",
			list: svc.Teachers, get: svc.Teacher, add: svc.AddTeacher, update: svc.UpdateTeacher, archive: svc.ArchiveTeacher,
			fromForm: teacherFormFromValues, toForm: teacherFormOf,
		},
		hrs: roster[models.HR, models.HRForm]{
			pages: pages, page: "hrs", base: "/admin/hrs", title: "HR", noun: "HR", label: "HR",
			list: svc.HRs, get: svc.HR, add: svc.AddHR, update: svc.UpdateHR, archive: svc.ArchiveHR,
			fromForm: hrFormFromValues, toForm: hrFormOf,
		},
	}
}

func (h *PeopleHandler) Overview(w http.ResponseWriter, r *http.Request) {
	var errMsg string
	counts, err := h.svc.Overview(r.Context())
	if err != nil {
		errMsg = "Failed to load overview"
	}
	h.pages.render(w, r, http.StatusOK, "admin", view{title: "Admin", section: "admin", errMsg: errMsg, data: counts})
}

func (h *PeopleHandler) Students(w http.ResponseWriter, r *http.Request)       { h.students.index(w, r) }
func (h *PeopleHandler) AddStudent(w http.ResponseWriter, r *http.Request)     { h.students.create(w, r) }
func (h *PeopleHandler) EditStudent(w http.ResponseWriter, r *http.Request)    { h.students.edit(w, r) }
func (h *PeopleHandler) ArchiveStudent(w http.ResponseWriter, r *http.Request) { h.students.remove(w, r) }
func (h *PeopleHandler) Teachers(w http.ResponseWriter, r *http.Request)       { h.teachers.index(w, r) }
func (h *PeopleHandler) AddTeacher(w http.ResponseWriter, r *http.Request)     { h.teachers.create(w, r) }
func (h *PeopleHandler) EditTeacher(w http.ResponseWriter, r *http.Request)    { h.teachers.edit(w, r) }
func (h *PeopleHandler) ArchiveTeacher(w http.ResponseWriter, r *http.Request) { h.teachers.remove(w, r) }
func (h *PeopleHandler) HRs(w http.ResponseWriter, r *http.Request)            { h.hrs.index(w, r) }
func (h *PeopleHandler) AddHR(w http.ResponseWriter, r *http.Request)          { h.hrs.create(w, r) }
func (h *PeopleHandler) EditHR(w http.ResponseWriter, r *http.Request)         { h.hrs.edit(w, r) }
func (h *PeopleHandler) ArchiveHR(w http.ResponseWriter, r *http.Request)      { h.hrs.remove(w, r) }

// ToggleHR flips an HR's active flag; the list shows the new value after a
// successful write.
func (h *PeopleHandler) ToggleHR(w http.ResponseWriter, r *http.Request) {
	hr, err := h.svc.ToggleHRActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		flashAndRedirect(w, r, session.FlashError, "Failed to update HR status", "/admin/hrs")
		return
	}
	state := "deactivated"
	if hr.IsActive {
		state = "activated"
	}
	flashAndRedirect(w, r, session.FlashSuccess, "HR "+state+" successfully", "/admin/hrs")
}

type peopleView[T, F any] struct {
	Search    string
	Items     []T
	Adding    bool
	Editing   *T
	Form      F
	FormError string
}

type roster[T, F any] struct {
	pages *Pages
	page  string
	base  string
	title string
	noun  string
	label string

	list    func(ctx context.Context, term string) ([]T, error)
	get     func(ctx context.Context, id string) (*T, error)
	add     func(ctx context.Context, form F) error
	update  func(ctx context.Context, id string, form F) error
	archive func(ctx context.Context, id string) error

	fromForm func(url.Values) F
	toForm   func(T) F
}

func (ro roster[T, F]) show(w http.ResponseWriter, r *http.Request, status int, data peopleView[T, F]) {
	var errMsg string
	items, err := ro.list(r.Context(), data.Search)
	if err != nil {
		errMsg = "Failed to load " + ro.noun + " data"
	}
	data.Items = items
	ro.pages.render(w, r, status, ro.page, view{title: ro.title, section: ro.page, errMsg: errMsg, data: data})
}

// index lists the records; ?add=1 opens the empty form and ?edit=<id> the
// prefilled one.
func (ro roster[T, F]) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := peopleView[T, F]{Search: q.Get("q"), Adding: q.Get("add") == "1"}

	if id := q.Get("edit"); id != "" {
		rec, err := ro.get(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			currentSession(r).AddFlash(session.FlashError, ro.label+" not found")
		case err != nil:
			currentSession(r).AddFlash(session.FlashError, "Failed to load "+ro.noun+" data")
		default:
			data.Adding = false
			data.Editing = rec
			data.Form = ro.toForm(*rec)
		}
	}
	ro.show(w, r, http.StatusOK, data)
}

func (ro roster[T, F]) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, session.FlashError, "Invalid form", ro.base)
		return
	}
	form := ro.fromForm(r.PostForm)
	if err := ro.add(r.Context(), form); err != nil {
		ro.show(w, r, http.StatusUnprocessableEntity, peopleView[T, F]{
			Adding:    true,
			Form:      form,
			FormError: formMessage(err, "Failed to add "+ro.noun),
		})
		return
	}
	flashAndRedirect(w, r, session.FlashSuccess, ro.label+" added successfully", ro.base)
}

func (ro roster[T, F]) edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, session.FlashError, "Invalid form", ro.base)
		return
	}
	form := ro.fromForm(r.PostForm)
	if err := ro.update(r.Context(), id, form); err != nil {
		data := peopleView[T, F]{Form: form, FormError: formMessage(err, "Failed to update "+ro.noun)}
		if rec, gerr := ro.get(r.Context(), id); gerr == nil {
			data.Editing = rec
		} else {
			data.Adding = true
		}
		ro.show(w, r, http.StatusUnprocessableEntity, data)
		return
	}
	flashAndRedirect(w, r, session.FlashSuccess, ro.label+" updated successfully", ro.base)
}

func (ro roster[T, F]) remove(w http.ResponseWriter, r *http.Request) {
	if err := ro.archive(r.Context(), mux.Vars(r)["id"]); err != nil {
		flashAndRedirect(w, r, session.FlashError, "Failed to archive "+ro.noun, ro.base)
		return
	}
	flashAndRedirect(w, r, session.FlashSuccess, ro.label+" archived successfully", ro.base)
}
