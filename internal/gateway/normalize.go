package gateway

import (
	"net/url"
	"strings"

	"lmscl/internal/models"
	"lmscl/internal/viewer"
)

const (
	DefaultInstructor     = "Instructor"
	DefaultTag            = "General"
	DefaultEstimatedHours = 10
	placeholderImage      = "https://placehold.co/400x200?text="
)

// NormalizeCard fills the optional fields the catalogue pages rely on.
func NormalizeCard(c models.CourseCard) models.CourseCard {
	if c.Image == "" {
		c.Image = placeholderImage + queryComponent(c.Title)
	} else {
		c.Image = viewer.DirectImageURL(c.Image)
	}
	if len(c.Tags) == 0 {
		c.Tags = []string{DefaultTag}
	}
	c.Instructor = c.TeacherName
	if c.Instructor == "" {
		c.Instructor = DefaultInstructor
	}
	if c.Progress < 0 {
		c.Progress = 0
	}
	if c.EstimatedHours <= 0 {
		c.EstimatedHours = DefaultEstimatedHours
	}
	return c
}

// queryComponent escapes s for use as one query value, spaces as %20.
func queryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func NormalizeCards(cards []models.CourseCard) []models.CourseCard {
	out := make([]models.CourseCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, NormalizeCard(c))
	}
	return out
}

func NormalizeBlog(b *models.Blog) {
	if b.Category == "" {
		b.Category = DefaultTag
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Chapters == nil {
		b.Chapters = []models.BlogChapter{}
	}
	b.FeaturedImage = viewer.DirectImageURL(b.FeaturedImage)
}
