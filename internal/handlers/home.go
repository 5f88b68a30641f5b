package handlers

import (
	"net/http"
	"strings"

	"lmscl/internal/logger"
	"lmscl/internal/render"
	helpers "lmscl/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HomeHandler covers navigation and the session itself.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home sends the visitor back to the section they were on last.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	path, _ := render.SectionPath(currentSession(r).ActiveSection)
	redirect(w, r, path)
}

func (h *HomeHandler) Section(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	path, ok := render.SectionPath(name)
	if ok {
		currentSession(r).ActiveSection = name
	}
	redirect(w, r, path)
}

// Logout drops everything kept for the visitor, including the backend token.
func (h *HomeHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	sess.Clear()
	logger.WithCtx(r.Context()).Info("session: cleared on logout")
	redirect(w, r, "/")
}

type tokenRequest struct {
	Token string `json:"token"`
}

// SetToken godoc
// @Summary Store the backend token for this session
// @Tags session
// @Accept json
// @Produce json
// @Param input body tokenRequest true "Backend bearer token"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/session/token [post]
func (h *HomeHandler) SetToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess := currentSession(r)
	sess.AuthToken = strings.TrimSpace(req.Token)
	logger.WithCtx(r.Context()).Info("session: token updated", zap.Bool("present", sess.AuthToken != ""))
	helpers.JSON(w, http.StatusOK, map[string]bool{"authenticated": sess.AuthToken != ""})
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} helpers.Response
// @Router /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

