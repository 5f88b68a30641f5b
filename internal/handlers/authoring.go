package handlers

import (
	"net/http"

	"lmscl/internal/models"
	"lmscl/internal/services"
	helpers "lmscl/internal/utils/helpres"
	"lmscl/internal/viewer"

	"github.com/gorilla/mux"
)

// AuthoringHandler accepts course and blog documents from the editors.
type AuthoringHandler struct {
	courses *services.CourseAuthoringService
	blogs   *services.BlogService
}

func NewAuthoringHandler(courses *services.CourseAuthoringService, blogs *services.BlogService) *AuthoringHandler {
	return &AuthoringHandler{courses: courses, blogs: blogs}
}

func decodeCourse(w http.ResponseWriter, r *http.Request) (*viewer.Course, bool) {
	var c viewer.Course
	if err := helpers.DecodeJSON(r, &c); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &c, true
}

// CreateCourse godoc
// @Summary Create a course
// @Tags authoring
// @Accept json
// @Produce json
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/courses [post]
func (h *AuthoringHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	c, ok := decodeCourse(w, r)
	if !ok {
		return
	}
	out, err := h.courses.Create(r.Context(), c)
	relay(w, out, err, "Failed to create course")
}

// SaveCourse godoc
// @Summary Save a course draft
// @Tags authoring
// @Accept json
// @Produce json
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/courses/save [post]
func (h *AuthoringHandler) SaveCourse(w http.ResponseWriter, r *http.Request) {
	c, ok := decodeCourse(w, r)
	if !ok {
		return
	}
	out, err := h.courses.Save(r.Context(), c)
	relay(w, out, err, "Failed to save course")
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags authoring
// @Accept json
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/courses/{id} [put]
func (h *AuthoringHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	c, ok := decodeCourse(w, r)
	if !ok {
		return
	}
	out, err := h.courses.Update(r.Context(), mux.Vars(r)["id"], c)
	relay(w, out, err, "Failed to update course")
}

// CreateBlog godoc
// @Summary Create a blog
// @Tags authoring
// @Accept json
// @Produce json
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /api/blogs [post]
func (h *AuthoringHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var b models.Blog
	if err := helpers.DecodeJSON(r, &b); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.blogs.Create(r.Context(), &b)
	relay(w, out, err, "Failed to create blog")
}
