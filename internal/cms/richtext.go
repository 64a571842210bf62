package cms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
)

// ExcerptLength is the maximum length, in runes, of a derived excerpt.
const ExcerptLength = 160

// renderContent converts article content to HTML. Strapi returns either a
// Markdown string or a list of rich-text blocks; only paragraph and heading
// blocks are rendered.
func renderContent(md goldmark.Markdown, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("failed to decode markdown content: %w", err)
		}
		var buf bytes.Buffer
		if err := md.Convert([]byte(text), &buf); err != nil {
			return "", fmt.Errorf("failed to render markdown content: %w", err)
		}
		return strings.TrimSpace(buf.String()), nil
	case '[':
		var blocks []block
		if err := json.Unmarshal(raw, &blocks); err != nil {
			return "", fmt.Errorf("failed to decode rich text: %w", err)
		}
		return renderBlocks(blocks), nil
	default:
		return "", nil
	}
}

func renderBlocks(blocks []block) string {
	var sb strings.Builder
	for _, b := range blocks {
		var text strings.Builder
		for _, c := range b.Children {
			text.WriteString(html.EscapeString(c.Text))
		}

		switch b.Type {
		case "paragraph":
			fmt.Fprintf(&sb, "<p>%s</p>", text.String())
		case "heading":
			level := b.Level
			if level < 1 || level > 6 {
				level = 2
			}
			fmt.Fprintf(&sb, "<h%d>%s</h%d>", level, text.String(), level)
		}
	}
	return sb.String()
}

// deriveExcerpt returns the visible text of an HTML fragment with whitespace
// collapsed, truncated to ExcerptLength runes.
func deriveExcerpt(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var parts []string
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})
	if len(parts) == 0 {
		parts = append(parts, doc.Text())
	}

	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}

	runes := []rune(text)
	return strings.TrimSpace(string(runes[:ExcerptLength-1])) + "…"
}
