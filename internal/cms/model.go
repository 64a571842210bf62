package cms

import "encoding/json"

// listResponse is the envelope of every Strapi collection endpoint.
type listResponse[T any] struct {
	Data []entry[T] `json:"data"`
}

type entry[T any] struct {
	ID         int `json:"id"`
	Attributes T   `json:"attributes"`
}

type media struct {
	Data *struct {
		Attributes struct {
			URL string `json:"url"`
		} `json:"attributes"`
	} `json:"data"`
}

func (m media) url() string {
	if m.Data == nil {
		return ""
	}
	return m.Data.Attributes.URL
}

type articleAttributes struct {
	Title       string          `json:"Title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt"`
	Content     json.RawMessage `json:"content"`
	Date        string          `json:"Date"`
	PublishedAt string          `json:"publishedAt"`
	Featured    bool            `json:"featured"`
	Media       media           `json:"Media"`
	Locale      string          `json:"locale"`
}

type heroAttributes struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Locale   string `json:"locale"`
}

type promotionAttributes struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CtaText     string `json:"ctaText"`
	CtaLink     string `json:"ctaLink"`
	Enabled     bool   `json:"enabled"`
	Image       media  `json:"image"`
}

// block is a Strapi rich-text block.
type block struct {
	Type     string  `json:"type"`
	Level    int     `json:"level"`
	Children []child `json:"children"`
}

type child struct {
	Text string `json:"text"`
}
