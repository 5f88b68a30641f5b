package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"lmscl/internal/models"
	"lmscl/internal/services"
	"lmscl/internal/session"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	pages   *Pages
	catalog *services.CatalogService
	blogs   *services.BlogService
}

func NewCatalogHandler(pages *Pages, catalog *services.CatalogService, blogs *services.BlogService) *CatalogHandler {
	return &CatalogHandler{pages: pages, catalog: catalog, blogs: blogs}
}

type cardsView struct {
	Search    string
	TeacherID string
	Cards     []models.CourseCard
}

func (h *CatalogHandler) Courses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := cardsView{Search: q.Get("q"), TeacherID: q.Get("teacher")}

	var errMsg string
	cards, err := h.catalog.Courses(r.Context(), data.TeacherID, data.Search)
	if err != nil {
		errMsg = "Failed to load courses"
	}
	data.Cards = cards

	h.pages.render(w, r, http.StatusOK, "courses", view{title: "Courses", section: "courses", errMsg: errMsg, data: data})
}

func (h *CatalogHandler) Blogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := cardsView{Search: q.Get("q"), TeacherID: q.Get("teacher")}

	var errMsg string
	cards, err := h.catalog.Blogs(r.Context(), data.TeacherID, data.Search)
	if err != nil {
		errMsg = "Failed to load blogs"
	}
	data.Cards = cards

	h.pages.render(w, r, http.StatusOK, "blogs", view{title: "Blogs", section: "blogs", errMsg: errMsg, data: data})
}

type blogView struct {
	Blog *models.Blog
	Edit bool
}

func (h *CatalogHandler) Blog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	blog, err := h.blogs.Get(r.Context(), id)
	if err != nil {
		h.pages.render(w, r, http.StatusOK, "blog", view{title: "Blog", section: "blogs", errMsg: "Failed to load blog", data: blogView{}})
		return
	}
	h.pages.render(w, r, http.StatusOK, "blog", view{
		title:   blog.Title,
		section: "blogs",
		data:    blogView{Blog: blog, Edit: r.URL.Query().Get("edit") == "1"},
	})
}

// SaveBlog applies the editor form and writes the whole document back.
func (h *CatalogHandler) SaveBlog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, session.FlashError, "Invalid form", blogPath(id)+"?edit=1")
		return
	}

	_, err := h.blogs.Update(r.Context(), id, blogEditFromForm(r.PostForm))
	switch {
	case errors.Is(err, services.ErrEmptyTitle):
		flashAndRedirect(w, r, session.FlashError, "Title is required", blogPath(id)+"?edit=1")
	case err != nil:
		flashAndRedirect(w, r, session.FlashError, formMessage(err, "Failed to save blog"), blogPath(id)+"?edit=1")
	default:
		flashAndRedirect(w, r, session.FlashSuccess, "Blog updated successfully", blogPath(id))
	}
}

func blogPath(id string) string {
	return "/blogs/" + url.PathEscape(id)
}

// blogEditFromForm reads the editor fields; content items arrive as content[<id>].
func blogEditFromForm(form url.Values) services.BlogEdit {
	edit := services.BlogEdit{
		Title:         form.Get("title"),
		Description:   form.Get("description"),
		Category:      form.Get("category"),
		FeaturedImage: form.Get("featured_image"),
		Tags:          splitList(form.Get("tags")),
		IsPublished:   form.Get("is_published") == "true",
		Contents:      map[string]string{},
	}
	for key, vals := range form {
		if strings.HasPrefix(key, "content[") && strings.HasSuffix(key, "]") && len(vals) > 0 {
			edit.Contents[key[len("content["):len(key)-1]] = vals[0]
		}
	}
	return edit
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
