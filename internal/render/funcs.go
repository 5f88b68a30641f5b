package render

import (
	"html/template"
	"strings"
	"time"
	"unicode"

	"lmscl/internal/services"
	"lmscl/internal/viewer"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Funcs() template.FuncMap {
	return template.FuncMap{
		"title":      Title,
		"initials":   Initials,
		"renderItem": viewer.RenderContentItem,
		"blogItems":  services.BlogContentItems,
		"daysAgo":    func(t time.Time) string { return services.DaysAgo(time.Now(), t) },
		"join":       strings.Join,
		"add":        func(a, b int) int { return a + b },
		"isActive":   func(a, b string) bool { return a == b },
		"pct":        func(v int) int { return clamp(v, 0, 100) },
		"fullName":   FullName,
		"sections":   func() []Section { return Sections },
		"boardTabs":  func() []string { return services.BoardTabs },
		"viewerTabs": func() []viewer.Tab { return viewer.Tabs },
		"tabLabel":   func(s string) string { return Title(strings.ReplaceAll(s, "fulltime", "full-time")) },
		"deref":      func(b *bool) bool { return b != nil && *b },
	}
}

// Title capitalises each word, e.g. skill levels and badges. Casers keep
// state, so one is built per call.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Initials is the avatar fallback: the first letter of up to two words.
func Initials(name string) string {
	upper := cases.Upper(language.English)
	var b strings.Builder
	n := 0
	for _, w := range strings.Fields(name) {
		r := []rune(w)
		if !unicode.IsLetter(r[0]) {
			continue
		}
		b.WriteString(upper.String(string(r[0])))
		if n++; n == 2 {
			break
		}
	}
	if n == 0 {
		return "?"
	}
	return b.String()
}

func FullName(first, last, fallback string) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return fallback
	}
	return name
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type Section struct {
	Name  string
	Label string
	Path  string
}

// Sections is the navigation; the active one is remembered per session.
var Sections = []Section{
	{"dashboard", "Dashboard", "/dashboard"},
	{"courses", "Courses", "/courses"},
	{"course", "Course Viewer", "/course"},
	{"blogs", "Blogs", "/blogs"},
	{"jobs", "Off-Campus Jobs", "/jobs"},
	{"jobboard", "Job Board", "/hr/jobs"},
	{"admin", "Admin", "/admin"},
	{"students", "Students", "/admin/students"},
	{"teachers", "Teachers", "/admin/teachers"},
	{"hrs", "HR", "/admin/hrs"},
	{"profile", "Profile", "/profile"},
}

// SectionPath maps a section name to its page, falling back to the dashboard.
func SectionPath(name string) (string, bool) {
	for _, s := range Sections {
		if s.Name == name {
			return s.Path, true
		}
	}
	return Sections[0].Path, false
}
