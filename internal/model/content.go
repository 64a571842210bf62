package model

import "time"

// Article is a news article published through the CMS.
type Article struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	HTML          string    `json:"html"`
	PublishedDate time.Time `json:"publishedDate"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Featured      bool      `json:"featured"`
}

// HeroContent is the localized headline block of the home page.
type HeroContent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Locale   string `json:"locale"`
}

// Promotion is a marketing popup managed in the CMS.
type Promotion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CtaText     string `json:"ctaText"`
	CtaLink     string `json:"ctaLink"`
	Enabled     bool   `json:"enabled"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
