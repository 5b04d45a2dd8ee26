package gallery

import (
	"strings"
	"unicode"
)

// Photo is one entry of the static gallery feed. Tags are comma-separated
// free text maintained by hand in the content file.
type Photo struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Tags    string `json:"tags"`
}

// Document is the shape of content/gallery.json.
type Document struct {
	Photos []Photo `json:"photos"`
}

// TagList splits the photo's tags, trimming whitespace and dropping empties.
func (p Photo) TagList() []string {
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasTag reports whether the photo carries the tag, case-insensitively.
func (p Photo) HasTag(tag string) bool {
	for _, t := range p.TagList() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TitleCase turns a raw tag into a display label, treating spaces, hyphens
// and underscores as word breaks.
func TitleCase(s string) string {
	words := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
