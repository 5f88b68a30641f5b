package handlers

import (
	"net/http"

	"lmscl/internal/models"
	"lmscl/internal/services"
)

type DashboardHandler struct {
	pages *Pages
	svc   *services.DashboardService
}

func NewDashboardHandler(pages *Pages, svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{pages: pages, svc: svc}
}

type dashboardView struct {
	Dashboard models.Dashboard
	WeekDays  []string
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "dashboard", view{
		title:   "Dashboard",
		section: "dashboard",
		data:    dashboardView{Dashboard: h.svc.Dashboard(), WeekDays: services.WeekDays()},
	})
}

func (h *DashboardHandler) Profile(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "profile", view{
		title:   "Profile",
		section: "profile",
		data:    h.svc.Profile(),
	})
}
