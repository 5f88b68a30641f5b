package viewer

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var contentTmpl = template.Must(template.New("content").Parse(`
{{define "text"}}<div class="text-content">{{if .}}{{.}}{{else}}No text available{{end}}</div>{{end}}
{{define "link"}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="link">{{if .Text}}{{.Text}}{{else}}{{.URL}}{{end}}</a>{{end}}
{{define "youtube"}}<div class="video-container"><iframe width="100%" height="400" src="{{.}}" title="YouTube video" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>{{end}}
{{define "code"}}<pre class="code-block"><code{{if .Language}} class="language-{{.Language}}"{{end}}>{{.Code}}</code></pre>{{end}}
{{define "media"}}<div class="{{.Kind}}-content"><div class="{{.Kind}}-preview"><iframe src="{{.Preview}}" title="{{.Title}}" class="{{.Kind}}-frame"{{if ne .Kind "pdf"}} allow="autoplay; fullscreen"{{end}}></iframe></div><a href="{{.URL}}" download="{{.Filename}}" class="download-link">Download {{.Label}}</a></div>{{end}}
{{define "unsupported"}}<div class="unsupported">Unsupported content type: {{.}}</div>{{end}}
`))

var textPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span", "code", "pre")
	return p
}()

type mediaView struct {
	Kind     ContentType
	URL      string
	Preview  string
	Filename string
	Title    string
	Label    string
}

var mediaLabels = map[ContentType][2]string{
	TypeImage: {"Image", "Uploaded image"},
	TypeVideo: {"Video", "Uploaded video"},
	TypePDF:   {"PDF", "PDF Preview"},
}

// RenderContentItem maps a content block to its HTML. Unknown tags render a
// placeholder naming the tag instead of failing.
func RenderContentItem(item ContentItem) template.HTML {
	var (
		name string
		data any
	)

	switch c := item.Content.(type) {
	case TextContent:
		name, data = "text", template.HTML(textPolicy.Sanitize(c.Text))
	case LinkContent:
		name, data = "link", c
	case YouTubeContent:
		name, data = "youtube", YouTubeEmbedURL(c.URL)
	case CodeContent:
		name, data = "code", c
	case MediaContent:
		labels := mediaLabels[c.Kind]
		name, data = "media", mediaView{
			Kind:     c.Kind,
			URL:      c.URL,
			Preview:  DrivePreviewURL(c.URL),
			Filename: c.Filename,
			Title:    firstNonEmpty(c.Filename, labels[1]),
			Label:    labels[0],
		}
	case UnsupportedContent:
		name, data = "unsupported", c.Type
	default:
		name, data = "unsupported", item.Type
	}

	var buf bytes.Buffer
	if err := contentTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		buf.Reset()
		_ = contentTmpl.ExecuteTemplate(&buf, "unsupported", item.Type)
	}
	return template.HTML(buf.String())
}

// DrivePreviewURL switches a Google Drive download link to its viewer.
func DrivePreviewURL(u string) string {
	return strings.Replace(u, "export=download", "export=view", 1)
}

var driveFileID = regexp.MustCompile(`/file/d/([^/]+)`)

// DirectImageURL turns a Drive "file/d/<id>" share link into a direct image URL.
func DirectImageURL(u string) string {
	if m := driveFileID.FindStringSubmatch(u); len(m) == 2 {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	return u
}

func YouTubeEmbedURL(u string) string {
	return strings.Replace(u, "watch?v=", "embed/", 1)
}
