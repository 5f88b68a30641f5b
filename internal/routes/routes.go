package routes

import (
	"net/http"

	"lmscl/internal/handlers"
	"lmscl/internal/middleware"
	"lmscl/internal/session"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Pages      *handlers.Pages
	Home       *handlers.HomeHandler
	Dashboard  *handlers.DashboardHandler
	Viewer     *handlers.ViewerHandler
	Catalog    *handlers.CatalogHandler
	Jobs       *handlers.JobsHandler
	People     *handlers.PeopleHandler
	Assessment *handlers.AssessmentHandler
	Authoring  *handlers.AuthoringHandler
}

func InitRoutes(router *mux.Router, h Handlers, store session.Store, codec *session.Codec) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Recoverer)
	router.NotFoundHandler = http.HandlerFunc(h.Pages.NotFound)

	router.HandleFunc("/health", h.Home.Health).Methods(http.MethodGet)

	// Everything below runs with the visitor's session.
	app := router.PathPrefix("").Subrouter()
	app.Use(middleware.Sessions(store, codec))

	// --- pages ---
	app.HandleFunc("/", h.Home.Home).Methods(http.MethodGet)
	app.HandleFunc("/section/{name}", h.Home.Section).Methods(http.MethodGet)
	app.HandleFunc("/logout", h.Home.Logout).Methods(http.MethodPost)

	app.HandleFunc("/dashboard", h.Dashboard.Dashboard).Methods(http.MethodGet)
	app.HandleFunc("/profile", h.Dashboard.Profile).Methods(http.MethodGet)

	app.HandleFunc("/courses", h.Catalog.Courses).Methods(http.MethodGet)
	app.HandleFunc("/blogs", h.Catalog.Blogs).Methods(http.MethodGet)
	app.HandleFunc("/blogs/{id}", h.Catalog.Blog).Methods(http.MethodGet)
	app.HandleFunc("/blogs/{id}", h.Catalog.SaveBlog).Methods(http.MethodPost)

	app.HandleFunc("/course", h.Viewer.Course).Methods(http.MethodGet)
	course := app.PathPrefix("/courses/{id}/view").Subrouter()
	course.HandleFunc("", h.Viewer.View).Methods(http.MethodGet)
	course.HandleFunc("/sidebar", h.Viewer.ToggleSidebar).Methods(http.MethodPost)
	course.HandleFunc("/tab", h.Viewer.SetTab).Methods(http.MethodPost)
	course.HandleFunc("/websearch", h.Viewer.WebSearch).Methods(http.MethodPost)
	course.HandleFunc("/notes", h.Viewer.Notes).Methods(http.MethodPost)
	course.HandleFunc("/chapters/{chapterID}/toggle", h.Viewer.ToggleChapter).Methods(http.MethodPost)
	course.HandleFunc("/chapters/{chapterID}/read", h.Viewer.MarkRead).Methods(http.MethodPost)

	app.HandleFunc("/jobs", h.Jobs.Jobs).Methods(http.MethodGet)
	app.HandleFunc("/hr/jobs", h.Jobs.JobBoard).Methods(http.MethodGet)

	admin := app.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("", h.People.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/students", h.People.Students).Methods(http.MethodGet)
	admin.HandleFunc("/students/add", h.People.AddStudent).Methods(http.MethodPost)
	admin.HandleFunc("/students/{id}/edit", h.People.EditStudent).Methods(http.MethodPost)
	admin.HandleFunc("/students/{id}/archive", h.People.ArchiveStudent).Methods(http.MethodPost)
	admin.HandleFunc("/teachers", h.People.Teachers).Methods(http.MethodGet)
	admin.HandleFunc("/teachers/add", h.People.AddTeacher).Methods(http.MethodPost)
	admin.HandleFunc("/teachers/{id}/edit", h.People.EditTeacher).Methods(http.MethodPost)
	admin.HandleFunc("/teachers/{id}/archive", h.People.ArchiveTeacher).Methods(http.MethodPost)
	admin.HandleFunc("/hrs", h.People.HRs).Methods(http.MethodGet)
	admin.HandleFunc("/hrs/add", h.People.AddHR).Methods(http.MethodPost)
	admin.HandleFunc("/hrs/{id}/edit", h.People.EditHR).Methods(http.MethodPost)
	admin.HandleFunc("/hrs/{id}/archive", h.People.ArchiveHR).Methods(http.MethodPost)
	admin.HandleFunc("/hrs/{id}/toggle", h.People.ToggleHR).Methods(http.MethodPost)

	// --- JSON ---
	api := app.PathPrefix("/api").Subrouter()
	api.HandleFunc("/session/token", h.Home.SetToken).Methods(http.MethodPost)

	api.HandleFunc("/viewer/{courseId}", h.Viewer.APIState).Methods(http.MethodGet)
	api.HandleFunc("/viewer/{courseId}/chapters/{chapterId}/toggle", h.Viewer.APIToggle).Methods(http.MethodPost)
	api.HandleFunc("/viewer/{courseId}/chapters/{chapterId}/read", h.Viewer.APIRead).Methods(http.MethodPost)
	api.HandleFunc("/viewer/{courseId}/tab", h.Viewer.APITab).Methods(http.MethodPost)

	api.HandleFunc("/courses", h.Authoring.CreateCourse).Methods(http.MethodPost)
	api.HandleFunc("/courses/save", h.Authoring.SaveCourse).Methods(http.MethodPost)
	api.HandleFunc("/courses/{id}", h.Authoring.UpdateCourse).Methods(http.MethodPut)
	api.HandleFunc("/blogs", h.Authoring.CreateBlog).Methods(http.MethodPost)

	api.HandleFunc("/skills", h.Assessment.Skills).Methods(http.MethodGet)
	api.HandleFunc("/assessments", h.Assessment.Store).Methods(http.MethodPost)
	api.HandleFunc("/assessments/generate", h.Assessment.Generate).Methods(http.MethodPost)
	api.HandleFunc("/assessments/{id}", h.Assessment.Details).Methods(http.MethodGet)
	api.HandleFunc("/assessments/{id}", h.Assessment.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/assessments/{id}/assign", h.Assessment.Assign).Methods(http.MethodPost)
	api.HandleFunc("/teachers/{id}/assessments", h.Assessment.ForTeacher).Methods(http.MethodGet)
	api.HandleFunc("/students/{id}/tests", h.Assessment.StudentTests).Methods(http.MethodGet)
	api.HandleFunc("/students/{id}/tests/completed", h.Assessment.Completed).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}", h.Assessment.FetchTest).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}", h.Assessment.UpdateTest).Methods(http.MethodPut)
	api.HandleFunc("/tests/{id}/edit", h.Assessment.GetTest).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}/submit", h.Assessment.Submit).Methods(http.MethodPost)
	api.HandleFunc("/tests/{id}/results/{studentId}", h.Assessment.Results).Methods(http.MethodGet)
}
