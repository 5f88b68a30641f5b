package gateway

import (
	"net/url"
	"testing"

	"lmscl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCardDefaults(t *testing.T) {
	got := NormalizeCard(models.CourseCard{Title: "Go Basics"})

	assert.Equal(t, "https://placehold.co/400x200?text=Go%20Basics", got.Image)
	assert.Equal(t, []string{"General"}, got.Tags)
	assert.Equal(t, "Instructor", got.Instructor)
	assert.Equal(t, 0, got.Progress)
	assert.Equal(t, 10, got.EstimatedHours)
}

func TestNormalizePlaceholderKeepsWholeTitle(t *testing.T) {
	got := NormalizeCard(models.CourseCard{Title: "C & C++ = fun?"})

	assert.Equal(t, "https://placehold.co/400x200?text=C%20%26%20C%2B%2B%20%3D%20fun%3F", got.Image)
	u, err := url.Parse(got.Image)
	require.NoError(t, err)
	assert.Equal(t, "C & C++ = fun?", u.Query().Get("text"))
	assert.Len(t, u.Query(), 1)
}

func TestNormalizeCardKeepsValues(t *testing.T) {
	got := NormalizeCard(models.CourseCard{
		Title:          "Go",
		Image:          "https://drive.google.com/file/d/abc/view?usp=sharing",
		Tags:           []string{"backend"},
		TeacherName:    "Rob",
		Progress:       40,
		EstimatedHours: 3,
	})

	assert.Equal(t, "https://drive.google.com/uc?export=view&id=abc", got.Image)
	assert.Equal(t, []string{"backend"}, got.Tags)
	assert.Equal(t, "Rob", got.Instructor)
	assert.Equal(t, 40, got.Progress)
	assert.Equal(t, 3, got.EstimatedHours)
}

func TestNormalizeBlog(t *testing.T) {
	b := &models.Blog{Title: "x"}
	NormalizeBlog(b)
	assert.Equal(t, "General", b.Category)
	assert.NotNil(t, b.Tags)
	assert.NotNil(t, b.Chapters)
}
