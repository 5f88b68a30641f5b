package handlers

import (
	"net/http"
	"strings"

	"lmscl/internal/logger"
	"lmscl/internal/render"
	"lmscl/internal/services"
	"lmscl/internal/session"

	"go.uber.org/zap"
)

// Pages renders full HTML pages: layout, clock, pending flash and the
// section the visitor is on.
type Pages struct {
	renderer *render.Renderer
	clock    *services.Clock
}

func NewPages(renderer *render.Renderer, clock *services.Clock) *Pages {
	return &Pages{renderer: renderer, clock: clock}
}

type view struct {
	title   string
	section string
	errMsg  string
	data    any
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, page string, v view) {
	sess := currentSession(r)
	if v.section != "" {
		sess.ActiveSection = v.section
	}

	err := p.renderer.HTML(w, status, page, render.Page{
		Title:   v.title,
		Section: sess.ActiveSection,
		Clock:   p.clock.Now(),
		Flash:   sess.PopFlash(),
		Error:   v.errMsg,
		Data:    v.data,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("render: page failed", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		jsonNotFound(w, r)
		return
	}
	p.render(w, r, http.StatusNotFound, "error", view{title: "Page not found", errMsg: "The page you are looking for does not exist."})
}

// currentSession never fails: routes outside the session middleware get a
// throwaway session.
func currentSession(r *http.Request) *session.Session {
	if s, ok := session.FromContext(r.Context()); ok {
		return s
	}
	return session.New()
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func flashAndRedirect(w http.ResponseWriter, r *http.Request, kind session.FlashKind, msg, to string) {
	currentSession(r).AddFlash(kind, msg)
	redirect(w, r, to)
}
