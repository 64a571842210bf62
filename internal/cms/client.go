// Package cms is a read-only client for the Strapi content API that serves
// news articles, hero content and promotion popups.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/yuin/goldmark"
)

// Client fetches content from a Strapi instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	markdown   goldmark.Markdown
}

// NewClient creates a client for the Strapi instance at baseURL. An empty
// token sends unauthenticated requests.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		markdown:   goldmark.New(),
	}
}

// FetchArticles returns the latest articles of a locale, newest first.
// An empty slice is returned when the locale has no articles.
func (c *Client) FetchArticles(ctx context.Context, locale string, limit int) ([]model.Article, error) {
	q := articleQuery(locale)
	q.Set("pagination[limit]", strconv.Itoa(limit))

	return c.fetchArticles(ctx, q)
}

// FetchFeaturedArticles returns the latest featured articles of a locale.
func (c *Client) FetchFeaturedArticles(ctx context.Context, locale string, limit int) ([]model.Article, error) {
	q := articleQuery(locale)
	q.Set("filters[featured][$eq]", "true")
	q.Set("pagination[limit]", strconv.Itoa(limit))

	return c.fetchArticles(ctx, q)
}

// FetchArticleBySlug returns the article with the given slug in a locale.
// Returns apperrors.ErrCMSNotFound when the locale holds no such article.
func (c *Client) FetchArticleBySlug(ctx context.Context, slug, locale string) (model.Article, error) {
	q := articleQuery(locale)
	q.Set("filters[slug][$eq]", slug)

	articles, err := c.fetchArticles(ctx, q)
	if err != nil {
		return model.Article{}, err
	}
	if len(articles) == 0 {
		return model.Article{}, fmt.Errorf("article %q (%s): %w", slug, locale, apperrors.ErrCMSNotFound)
	}
	return articles[0], nil
}

// FetchHero returns the first hero content entry of a locale.
// Returns apperrors.ErrCMSNotFound when the locale has none.
func (c *Client) FetchHero(ctx context.Context, locale string) (model.HeroContent, error) {
	q := url.Values{}
	q.Set("filters[locale][$eq]", locale)
	q.Set("populate", "*")

	var resp listResponse[heroAttributes]
	if err := c.get(ctx, "/api/hero-contents", q, &resp); err != nil {
		return model.HeroContent{}, err
	}
	if len(resp.Data) == 0 {
		return model.HeroContent{}, fmt.Errorf("hero content (%s): %w", locale, apperrors.ErrCMSNotFound)
	}

	e := resp.Data[0]
	return model.HeroContent{
		ID:       strconv.Itoa(e.ID),
		Title:    e.Attributes.Title,
		Subtitle: e.Attributes.Subtitle,
		Locale:   e.Attributes.Locale,
	}, nil
}

// FetchPromotions returns the enabled promotion popups.
func (c *Client) FetchPromotions(ctx context.Context) ([]model.Promotion, error) {
	q := url.Values{}
	q.Set("filters[enabled][$eq]", "true")
	q.Set("populate", "*")

	var resp listResponse[promotionAttributes]
	if err := c.get(ctx, "/api/promotion-popups", q, &resp); err != nil {
		return nil, err
	}

	promotions := make([]model.Promotion, 0, len(resp.Data))
	for _, e := range resp.Data {
		a := e.Attributes
		promotions = append(promotions, model.Promotion{
			ID:          strconv.Itoa(e.ID),
			Title:       a.Title,
			Description: a.Description,
			CtaText:     a.CtaText,
			CtaLink:     a.CtaLink,
			Enabled:     a.Enabled,
			ImageURL:    c.absoluteURL(a.Image.url()),
		})
	}
	return promotions, nil
}

func articleQuery(locale string) url.Values {
	q := url.Values{}
	q.Set("locale", locale)
	q.Set("populate", "*")
	q.Set("sort", "Date:desc")
	return q
}

func (c *Client) fetchArticles(ctx context.Context, q url.Values) ([]model.Article, error) {
	var resp listResponse[articleAttributes]
	if err := c.get(ctx, "/api/articles", q, &resp); err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(resp.Data))
	for _, e := range resp.Data {
		a, err := c.toArticle(e)
		if err != nil {
			return nil, fmt.Errorf("%w: article %d: %w", apperrors.ErrCMSNetwork, e.ID, err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (c *Client) toArticle(e entry[articleAttributes]) (model.Article, error) {
	a := e.Attributes

	body, err := renderContent(c.markdown, a.Content)
	if err != nil {
		return model.Article{}, err
	}

	excerpt := strings.TrimSpace(a.Excerpt)
	if excerpt == "" {
		excerpt = deriveExcerpt(body)
	}

	published := a.Date
	if published == "" {
		published = a.PublishedAt
	}

	return model.Article{
		ID:            strconv.Itoa(e.ID),
		Slug:          a.Slug,
		Title:         a.Title,
		Excerpt:       excerpt,
		HTML:          body,
		PublishedDate: parseDate(published),
		ImageURL:      c.absoluteURL(a.Media.url()),
		Featured:      a.Featured,
	}, nil
}

// absoluteURL prefixes upload paths with the CMS base URL.
func (c *Client) absoluteURL(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return c.baseURL + u
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrCMSNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrCMSNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, apperrors.ErrCMSNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", apperrors.ErrCMSNetwork, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrCMSNetwork, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: undecodable body from %s: %w", apperrors.ErrCMSNetwork, path, err)
	}
	return nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
