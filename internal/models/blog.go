package models

// Blog is the document behind GET /api/viewblogs/{id}/.
type Blog struct {
	ID            string        `json:"_id,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	FeaturedImage string        `json:"featured_image"`
	IsPublished   bool          `json:"is_published"`
	Tags          []string      `json:"tags"`
	AuthorID      any           `json:"author_id"`
	Chapters      []BlogChapter `json:"chapters"`
}

type BlogChapter struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Template string        `json:"template"`
	Order    int           `json:"order"`
	Contents []BlogContent `json:"contents"`
}

type BlogContent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// UpdateBlogRequest is the body of PUT /api/updateblogs/{id}/; the full
// document travels again as a JSON string in BlogDataJSON.
type UpdateBlogRequest struct {
	BlogDataJSON  string   `json:"blog_data_json"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	AuthorID      any      `json:"author_id"`
	Tags          []string `json:"tags"`
	IsPublished   bool     `json:"is_published"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category"`
}
