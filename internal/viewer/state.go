// Package viewer is the course player: the course document model, the
// per-visitor expansion/completion state and the content renderer.
package viewer

import (
	"math"
	"net/url"
	"strings"

	"lmscl/internal/listing"
)

type Tab string

const (
	TabOutline Tab = "outline"
	TabInfo    Tab = "info"
	TabWeb     Tab = "web"
	TabNotes   Tab = "notes"
)

var Tabs = []Tab{TabOutline, TabInfo, TabWeb, TabNotes}

func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

const NotesFilename = "course-notes.txt"

// State is the ephemeral UI state of one course viewer. It is never sent to
// the backend; it lives in the visitor's session and dies with it.
type State struct {
	CourseID      string          `json:"course_id"`
	Course        *Course         `json:"course"`
	Expanded      map[string]bool `json:"expanded"`
	Completed     map[string]bool `json:"completed"`
	SearchTerm    string          `json:"search_term"`
	WebSearchTerm string          `json:"web_search_term"`
	ActiveTab     Tab             `json:"active_tab"`
	SidebarOpen   bool            `json:"sidebar_open"`
	Notes         string          `json:"notes"`
}

// New builds the state for a freshly fetched course with the first chapter expanded.
func New(courseID string, c *Course) *State {
	c.Normalize()
	s := &State{
		CourseID:    courseID,
		Course:      c,
		Expanded:    map[string]bool{},
		Completed:   map[string]bool{},
		ActiveTab:   TabOutline,
		SidebarOpen: true,
	}
	if len(c.Chapters) > 0 {
		s.Expanded[c.Chapters[0].ID] = true
	}
	return s
}

func (s *State) ensureMaps() {
	if s.Expanded == nil {
		s.Expanded = map[string]bool{}
	}
	if s.Completed == nil {
		s.Completed = map[string]bool{}
	}
}

// ToggleChapterExpansion flips one chapter; several chapters may be open at once.
func (s *State) ToggleChapterExpansion(chapterID string) {
	s.ensureMaps()
	s.Expanded[chapterID] = !s.Expanded[chapterID]
}

// MarkChapterAsRead flips the completion flag. It never touches expansion.
func (s *State) MarkChapterAsRead(chapterID string) {
	s.ensureMaps()
	s.Completed[chapterID] = !s.Completed[chapterID]
}

func (s *State) IsExpanded(chapterID string) bool  { return s.Expanded[chapterID] }
func (s *State) IsCompleted(chapterID string) bool { return s.Completed[chapterID] }

func (s *State) CompletedCount() int {
	if s.Course == nil {
		return 0
	}
	n := 0
	for _, ch := range s.Course.Chapters {
		if s.Completed[ch.ID] {
			n++
		}
	}
	return n
}

// CalculateProgress is completed/total*100 rounded to the nearest integer, 0 without chapters.
func (s *State) CalculateProgress() int {
	if s.Course == nil || len(s.Course.Chapters) == 0 {
		return 0
	}
	return int(math.Round(float64(s.CompletedCount()) / float64(len(s.Course.Chapters)) * 100))
}

func (s *State) SetActiveTab(t Tab) {
	s.ActiveTab = t
}

func (s *State) ToggleSidebar() {
	s.SidebarOpen = !s.SidebarOpen
}

// VisibleChapters applies the in-course search to chapter titles and text/code blocks.
func (s *State) VisibleChapters() []Chapter {
	if s.Course == nil {
		return nil
	}
	return listing.Filter(s.Course.Chapters, s.SearchTerm, chapterSearchFields)
}

func chapterSearchFields(ch Chapter) []string {
	fields := []string{ch.Title}
	for _, it := range ch.Contents {
		switch c := it.Content.(type) {
		case TextContent:
			fields = append(fields, c.Text)
		case CodeContent:
			fields = append(fields, c.Code)
		case LinkContent:
			fields = append(fields, c.Text)
		}
	}
	return fields
}

// ChapterNumber is the 1-based position of the chapter in the full outline.
func (s *State) ChapterNumber(chapterID string) int {
	if s.Course == nil {
		return 0
	}
	for i, ch := range s.Course.Chapters {
		if ch.ID == chapterID {
			return i + 1
		}
	}
	return 0
}

func (s *State) SuggestedSearches() []string {
	title := ""
	if s.Course != nil {
		title = s.Course.Title
	}
	return []string{
		title + " examples",
		title + " tutorial",
		title + " exercises",
		title + " best practices",
	}
}

// WebSearchURL builds the external search link for the current term with the
// course title appended. ok is false when there is nothing to search for.
func (s *State) WebSearchURL(base string) (string, bool) {
	term := strings.TrimSpace(s.WebSearchTerm)
	if term == "" {
		return "", false
	}
	title := ""
	if s.Course != nil {
		title = s.Course.Title
	}
	q := url.Values{}
	q.Set("q", term+" "+title)
	return base + "?" + q.Encode(), true
}

func (s *State) NotesFile() (string, []byte) {
	return NotesFilename, []byte(s.Notes)
}

func (s *State) ClearNotes() {
	s.Notes = ""
}
