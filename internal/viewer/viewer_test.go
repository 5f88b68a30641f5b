package viewer

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courseJSON = `{
  "_id": "680722091c717f2f59d41dac",
  "title": "Go Basics",
  "theme": "dark",
  "chapters": [
    {"id": "c1", "title": "Intro", "template": "default", "order": 1, "contents": [
      {"id": "i1", "type": "text", "order": 1, "content": "Welcome to <b>Go</b>"},
      {"id": "i2", "type": "youtube", "order": 2, "content": "https://www.youtube.com/watch?v=abc"},
      {"id": "i3", "type": "code", "order": 3, "content": {"code": "fmt.Println(1)"}}
    ]},
    {"id": "c2", "title": "Goroutines", "template": "default", "order": 2, "contents": [
      {"id": "i4", "type": "pdf", "order": 1, "content": {"url": "https://drive.google.com/uc?export=download&id=9", "filename": "slides.pdf"}},
      {"id": "i5", "type": "quiz", "order": 2, "content": {"q": 1}}
    ]}
  ]
}`

func decodeCourse(t *testing.T, raw string) *Course {
	t.Helper()
	var c Course
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	return &c
}

func twoChapterState(t *testing.T) *State {
	t.Helper()
	return New("680722091c717f2f59d41dac", decodeCourse(t, courseJSON))
}

func TestNewExpandsFirstChapter(t *testing.T) {
	s := twoChapterState(t)
	assert.Equal(t, map[string]bool{"c1": true}, s.Expanded)
	assert.Empty(t, s.Completed)
	assert.Equal(t, TabOutline, s.ActiveTab)
	assert.True(t, s.SidebarOpen)

	s.ToggleChapterExpansion("c2")
	assert.Equal(t, map[string]bool{"c1": true, "c2": true}, s.Expanded)
}

func TestNewWithoutChapters(t *testing.T) {
	s := New("x", &Course{Title: "Empty"})
	assert.Empty(t, s.Expanded)
	assert.Equal(t, 0, s.CalculateProgress())
	assert.NotNil(t, s.Course.Chapters)
}

func TestToggleIsIndependent(t *testing.T) {
	s := twoChapterState(t)
	before := s.IsExpanded("c2")

	s.ToggleChapterExpansion("c1")
	assert.False(t, s.IsExpanded("c1"))
	assert.Equal(t, before, s.IsExpanded("c2"))

	s.ToggleChapterExpansion("c1")
	assert.True(t, s.IsExpanded("c1"))
	assert.Equal(t, before, s.IsExpanded("c2"))
}

func TestMarkChapterAsReadTwiceRestores(t *testing.T) {
	s := twoChapterState(t)
	expanded := map[string]bool{}
	for k, v := range s.Expanded {
		expanded[k] = v
	}

	s.MarkChapterAsRead("c2")
	assert.True(t, s.IsCompleted("c2"))
	assert.Equal(t, expanded, s.Expanded, "marking read must not change expansion")

	s.MarkChapterAsRead("c2")
	assert.False(t, s.IsCompleted("c2"))
}

func TestCalculateProgress(t *testing.T) {
	chapters := func(n int) []Chapter {
		out := make([]Chapter, n)
		for i := range out {
			out[i] = Chapter{ID: string(rune('a' + i))}
		}
		return out
	}

	cases := []struct {
		total, done, want int
	}{
		{0, 0, 0},
		{2, 1, 50},
		{3, 1, 33},
		{3, 2, 67},
		{6, 1, 17},
		{8, 1, 13},
		{4, 4, 100},
	}
	for _, tc := range cases {
		s := New("x", &Course{Chapters: chapters(tc.total)})
		for i := 0; i < tc.done; i++ {
			s.MarkChapterAsRead(s.Course.Chapters[i].ID)
		}
		assert.Equal(t, tc.want, s.CalculateProgress(), "total=%d done=%d", tc.total, tc.done)
	}
}

func TestProgressIgnoresUnknownChapters(t *testing.T) {
	s := twoChapterState(t)
	s.MarkChapterAsRead("ghost")
	assert.Equal(t, 0, s.CalculateProgress())
}

func TestDecodeContentVariants(t *testing.T) {
	c := decodeCourse(t, courseJSON)
	items := c.Chapters[0].Contents

	assert.Equal(t, TextContent{Text: "Welcome to <b>Go</b>"}, items[0].Content)
	assert.Equal(t, YouTubeContent{URL: "https://www.youtube.com/watch?v=abc"}, items[1].Content)
	assert.Equal(t, CodeContent{Code: "fmt.Println(1)"}, items[2].Content)

	pdf := c.Chapters[1].Contents[0].Content
	assert.Equal(t, MediaContent{Kind: TypePDF, URL: "https://drive.google.com/uc?export=download&id=9", Filename: "slides.pdf"}, pdf)

	unknown, ok := c.Chapters[1].Contents[1].Content.(UnsupportedContent)
	require.True(t, ok)
	assert.Equal(t, "quiz", unknown.Type)
}

func TestContentItemRoundTrip(t *testing.T) {
	s := twoChapterState(t)
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s.Course.Chapters, back.Course.Chapters)
	assert.Equal(t, s.Expanded, back.Expanded)
}

func TestRenderContentItem(t *testing.T) {
	c := decodeCourse(t, courseJSON)

	text := string(RenderContentItem(c.Chapters[0].Contents[0]))
	assert.Contains(t, text, "Welcome to <b>Go</b>")

	yt := string(RenderContentItem(c.Chapters[0].Contents[1]))
	assert.Contains(t, yt, "https://www.youtube.com/embed/abc")

	code := string(RenderContentItem(c.Chapters[0].Contents[2]))
	assert.Contains(t, code, "<pre class=\"code-block\"><code>fmt.Println(1)</code></pre>")

	pdf := string(RenderContentItem(c.Chapters[1].Contents[0]))
	assert.Contains(t, pdf, "export=view")
	assert.Contains(t, pdf, "Download PDF")
	assert.Contains(t, pdf, `download="slides.pdf"`)

	unknown := string(RenderContentItem(c.Chapters[1].Contents[1]))
	assert.Contains(t, unknown, "Unsupported content type: quiz")
}

func TestRenderEscapesAndDefaults(t *testing.T) {
	out := string(RenderContentItem(ContentItem{Type: "text", Content: TextContent{Text: `<script>alert(1)</script>hi`}}))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hi")

	empty := string(RenderContentItem(ContentItem{Type: "text", Content: TextContent{}}))
	assert.Contains(t, empty, "No text available")

	link := string(RenderContentItem(ContentItem{Type: "link", Content: LinkContent{URL: "https://go.dev"}}))
	assert.Contains(t, link, `href="https://go.dev"`)
	assert.Contains(t, link, `target="_blank"`)

	missing := string(RenderContentItem(ContentItem{Type: "hologram"}))
	assert.Contains(t, missing, "Unsupported content type: hologram")
}

func TestVisibleChapters(t *testing.T) {
	s := twoChapterState(t)
	assert.Len(t, s.VisibleChapters(), 2)

	s.SearchTerm = "GOROUT"
	got := s.VisibleChapters()
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)
	assert.Equal(t, 2, s.ChapterNumber("c2"))

	s.SearchTerm = "println"
	got = s.VisibleChapters()
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestWebSearchURL(t *testing.T) {
	s := twoChapterState(t)
	_, ok := s.WebSearchURL("https://www.google.com/search")
	assert.False(t, ok)

	s.WebSearchTerm = "channels"
	link, ok := s.WebSearchURL("https://www.google.com/search")
	require.True(t, ok)
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "channels Go Basics", u.Query().Get("q"))

	assert.Equal(t, []string{"Go Basics examples", "Go Basics tutorial", "Go Basics exercises", "Go Basics best practices"}, s.SuggestedSearches())
}

func TestNotes(t *testing.T) {
	s := twoChapterState(t)
	s.Notes = "remember select"
	name, body := s.NotesFile()
	assert.Equal(t, "course-notes.txt", name)
	assert.Equal(t, "remember select", string(body))

	s.ClearNotes()
	_, body = s.NotesFile()
	assert.Empty(t, body)
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, ok := ParseTab(string(tab))
		assert.True(t, ok)
		assert.Equal(t, tab, got)
	}
	_, ok := ParseTab("settings")
	assert.False(t, ok)
}

func TestURLHelpers(t *testing.T) {
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=1", DrivePreviewURL("https://drive.google.com/uc?export=download&id=1"))
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=abc", DirectImageURL("https://drive.google.com/file/d/abc/view"))
	assert.Equal(t, "https://example.com/a.png", DirectImageURL("https://example.com/a.png"))
	assert.True(t, strings.HasSuffix(YouTubeEmbedURL("https://youtube.com/watch?v=x"), "embed/x"))
}
