package testutil

import (
	"context"
	"fmt"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
)

// MockContentSource is an in-memory implementation of service.ContentSource.
// Content is keyed by locale; a non-nil Err is returned from every call.
type MockContentSource struct {
	Articles   map[string][]model.Article
	Heroes     map[string]model.HeroContent
	Promotions []model.Promotion
	Err        error
	// Calls records the locale of every article and hero request, in order
	Calls []string
}

// NewMockContentSource creates an empty content source.
func NewMockContentSource() *MockContentSource {
	return &MockContentSource{
		Articles: map[string][]model.Article{},
		Heroes:   map[string]model.HeroContent{},
	}
}

// WithArticles sets the articles of a locale.
func (m *MockContentSource) WithArticles(locale string, articles ...model.Article) *MockContentSource {
	m.Articles[locale] = articles
	return m
}

// WithHero sets the hero content of a locale.
func (m *MockContentSource) WithHero(locale string, hero model.HeroContent) *MockContentSource {
	m.Heroes[locale] = hero
	return m
}

// WithPromotions sets the promotion popups.
func (m *MockContentSource) WithPromotions(promotions ...model.Promotion) *MockContentSource {
	m.Promotions = promotions
	return m
}

// WithError makes every call fail with err.
func (m *MockContentSource) WithError(err error) *MockContentSource {
	m.Err = err
	return m
}

// FetchArticles returns up to limit articles of the locale.
func (m *MockContentSource) FetchArticles(_ context.Context, locale string, limit int) ([]model.Article, error) {
	m.Calls = append(m.Calls, locale)
	if m.Err != nil {
		return nil, m.Err
	}
	articles := m.Articles[locale]
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return append([]model.Article{}, articles...), nil
}

// FetchFeaturedArticles returns up to limit featured articles of the locale.
func (m *MockContentSource) FetchFeaturedArticles(_ context.Context, locale string, limit int) ([]model.Article, error) {
	m.Calls = append(m.Calls, locale)
	if m.Err != nil {
		return nil, m.Err
	}
	featured := []model.Article{}
	for _, a := range m.Articles[locale] {
		if a.Featured && len(featured) < limit {
			featured = append(featured, a)
		}
	}
	return featured, nil
}

// FetchArticleBySlug returns the article of the locale with the slug.
func (m *MockContentSource) FetchArticleBySlug(_ context.Context, slug, locale string) (model.Article, error) {
	m.Calls = append(m.Calls, locale)
	if m.Err != nil {
		return model.Article{}, m.Err
	}
	for _, a := range m.Articles[locale] {
		if a.Slug == slug {
			return a, nil
		}
	}
	return model.Article{}, fmt.Errorf("article %q: %w", slug, apperrors.ErrCMSNotFound)
}

// FetchHero returns the hero content of the locale.
func (m *MockContentSource) FetchHero(_ context.Context, locale string) (model.HeroContent, error) {
	m.Calls = append(m.Calls, locale)
	if m.Err != nil {
		return model.HeroContent{}, m.Err
	}
	hero, ok := m.Heroes[locale]
	if !ok {
		return model.HeroContent{}, fmt.Errorf("hero %s: %w", locale, apperrors.ErrCMSNotFound)
	}
	return hero, nil
}

// FetchPromotions returns the configured promotions.
func (m *MockContentSource) FetchPromotions(context.Context) ([]model.Promotion, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Promotions, nil
}
