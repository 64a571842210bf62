package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/rs/zerolog"
)

// ContentSource is the CMS the news service reads from.
type ContentSource interface {
	FetchArticles(ctx context.Context, locale string, limit int) ([]model.Article, error)
	FetchFeaturedArticles(ctx context.Context, locale string, limit int) ([]model.Article, error)
	FetchArticleBySlug(ctx context.Context, slug, locale string) (model.Article, error)
	FetchHero(ctx context.Context, locale string) (model.HeroContent, error)
	FetchPromotions(ctx context.Context) ([]model.Promotion, error)
}

// NewsService serves CMS content for a locale. Arabic article requests fall
// back to English when the Arabic content is missing.
type NewsService struct {
	source ContentSource
	log    zerolog.Logger
}

// NewNewsService creates a new NewsService.
func NewNewsService(source ContentSource, log zerolog.Logger) *NewsService {
	return &NewsService{
		source: source,
		log:    log.With().Str("component", "news").Logger(),
	}
}

// Articles returns the latest articles of the locale.
func (s *NewsService) Articles(ctx context.Context, loc locale.Locale, limit int) ([]model.Article, error) {
	articles, err := s.source.FetchArticles(ctx, loc.Language, limit)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 && loc.Language == locale.Arabic {
		s.log.Debug().Msg("No Arabic articles found, falling back to English")
		return s.source.FetchArticles(ctx, locale.English, limit)
	}
	return articles, nil
}

// FeaturedArticles returns the latest featured articles of the locale.
func (s *NewsService) FeaturedArticles(ctx context.Context, loc locale.Locale, limit int) ([]model.Article, error) {
	return s.source.FetchFeaturedArticles(ctx, loc.Language, limit)
}

// ArticleBySlug returns a single article.
// Returns apperrors.ErrArticleNotFound when no locale holds the slug.
func (s *NewsService) ArticleBySlug(ctx context.Context, loc locale.Locale, slug string) (model.Article, error) {
	article, err := s.source.FetchArticleBySlug(ctx, slug, loc.Language)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, apperrors.ErrCMSNotFound) {
		return model.Article{}, err
	}

	if loc.Language == locale.Arabic {
		s.log.Debug().Str("slug", slug).Msg("No Arabic article found, falling back to English")
		article, err = s.source.FetchArticleBySlug(ctx, slug, locale.English)
		if err == nil {
			return article, nil
		}
		if !errors.Is(err, apperrors.ErrCMSNotFound) {
			return model.Article{}, err
		}
	}

	return model.Article{}, fmt.Errorf("%w: %s", apperrors.ErrArticleNotFound, slug)
}

// Hero returns the hero content of the locale.
// Returns apperrors.ErrHeroContentNotFound when the CMS has none.
func (s *NewsService) Hero(ctx context.Context, loc locale.Locale) (model.HeroContent, error) {
	hero, err := s.source.FetchHero(ctx, loc.Language)
	if errors.Is(err, apperrors.ErrCMSNotFound) {
		return model.HeroContent{}, fmt.Errorf("%w: %s", apperrors.ErrHeroContentNotFound, loc.Language)
	}
	return hero, err
}

// Promotion returns the first enabled promotion popup. The boolean is false
// when no popup is enabled.
func (s *NewsService) Promotion(ctx context.Context) (model.Promotion, bool, error) {
	promotions, err := s.source.FetchPromotions(ctx)
	if err != nil {
		return model.Promotion{}, false, err
	}

	for _, p := range promotions {
		if p.Enabled {
			return p, true, nil
		}
	}
	return model.Promotion{}, false, nil
}
