package viewer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

type ContentType string

const (
	TypeText    ContentType = "text"
	TypeLink    ContentType = "link"
	TypeYouTube ContentType = "youtube"
	TypeCode    ContentType = "code"
	TypeImage   ContentType = "image"
	TypeVideo   ContentType = "video"
	TypePDF     ContentType = "pdf"
)

// Course is the document returned by GET /api/get_student_courses/{id}/.
type Course struct {
	ID       string    `json:"_id,omitempty"`
	Title    string    `json:"title"`
	Theme    string    `json:"theme"`
	Chapters []Chapter `json:"chapters"`
}

type Chapter struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Template string        `json:"template"`
	Order    int           `json:"order"`
	Contents []ContentItem `json:"contents"`
}

// ContentItem is one renderable block. Content holds exactly one of the
// variants below; the wire "type" tag selects which.
type ContentItem struct {
	ID      string
	Type    string
	Order   int
	Content Content
}

// Content is implemented only by the variants in this package.
type Content interface {
	contentType() ContentType
}

type TextContent struct {
	Text string
}

type LinkContent struct {
	URL  string
	Text string
}

type YouTubeContent struct {
	URL string
}

type CodeContent struct {
	Code     string
	Language string
}

// MediaContent covers image, video and pdf uploads (usually Google Drive links).
type MediaContent struct {
	Kind     ContentType
	URL      string
	Filename string
}

// UnsupportedContent keeps the raw payload of a tag this package does not know.
type UnsupportedContent struct {
	Type string
	Raw  json.RawMessage
}

func (TextContent) contentType() ContentType          { return TypeText }
func (LinkContent) contentType() ContentType          { return TypeLink }
func (YouTubeContent) contentType() ContentType       { return TypeYouTube }
func (CodeContent) contentType() ContentType          { return TypeCode }
func (c MediaContent) contentType() ContentType       { return c.Kind }
func (c UnsupportedContent) contentType() ContentType { return ContentType(c.Type) }

type wireItem struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Order   int             `json:"order"`
	Content json.RawMessage `json:"content"`
}

func (i *ContentItem) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode content item: %w", err)
	}
	i.ID = w.ID
	i.Type = w.Type
	i.Order = w.Order
	i.Content = decodeContent(w.Type, w.Content)
	return nil
}

func (i ContentItem) MarshalJSON() ([]byte, error) {
	payload, err := encodeContent(i.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireItem{ID: i.ID, Type: i.Type, Order: i.Order, Content: payload})
}

// decodeContent accepts both shapes the backend produces: a bare string
// (text, youtube) or an object with url/filename/text/code keys.
func decodeContent(tag string, raw json.RawMessage) Content {
	str, obj := splitPayload(raw)

	switch ContentType(tag) {
	case TypeText:
		return TextContent{Text: firstNonEmpty(str, obj["text"])}
	case TypeLink:
		return LinkContent{URL: firstNonEmpty(obj["url"], str), Text: obj["text"]}
	case TypeYouTube:
		return YouTubeContent{URL: firstNonEmpty(str, obj["url"])}
	case TypeCode:
		return CodeContent{Code: firstNonEmpty(obj["code"], str), Language: obj["language"]}
	case TypeImage, TypeVideo, TypePDF:
		return MediaContent{Kind: ContentType(tag), URL: firstNonEmpty(obj["url"], str), Filename: obj["filename"]}
	default:
		return UnsupportedContent{Type: tag, Raw: compactRaw(raw)}
	}
}

func compactRaw(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil
	}
	return buf.Bytes()
}

func encodeContent(c Content) (json.RawMessage, error) {
	var v any
	switch c := c.(type) {
	case nil:
		return json.RawMessage("null"), nil
	case TextContent:
		v = c.Text
	case LinkContent:
		v = map[string]string{"url": c.URL, "text": c.Text}
	case YouTubeContent:
		v = c.URL
	case CodeContent:
		v = map[string]string{"code": c.Code, "language": c.Language}
	case MediaContent:
		v = map[string]string{"url": c.URL, "filename": c.Filename}
	case UnsupportedContent:
		if len(c.Raw) == 0 {
			return json.RawMessage("null"), nil
		}
		return c.Raw, nil
	default:
		return nil, fmt.Errorf("encode content: unknown variant %T", c)
	}
	return json.Marshal(v)
}

func splitPayload(raw json.RawMessage) (string, map[string]string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", map[string]string{}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, map[string]string{}
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", map[string]string{}
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return "", out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Normalize orders chapters and their contents by the order index,
// keeping backend order for ties, and replaces nil slices.
func (c *Course) Normalize() {
	if c.Chapters == nil {
		c.Chapters = []Chapter{}
	}
	sort.SliceStable(c.Chapters, func(i, j int) bool { return c.Chapters[i].Order < c.Chapters[j].Order })
	for i := range c.Chapters {
		ch := &c.Chapters[i]
		if ch.Contents == nil {
			ch.Contents = []ContentItem{}
		}
		sort.SliceStable(ch.Contents, func(a, b int) bool { return ch.Contents[a].Order < ch.Contents[b].Order })
	}
}

func (c *Course) Chapter(id string) (Chapter, bool) {
	for _, ch := range c.Chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Chapter{}, false
}

// NewContentItem builds an item from a type tag and its wire payload.
func NewContentItem(id, tag string, order int, raw json.RawMessage) ContentItem {
	return ContentItem{ID: id, Type: tag, Order: order, Content: decodeContent(tag, raw)}
}
