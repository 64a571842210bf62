package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/response"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/validation"
)

const (
	defaultArticleLimit  = 10
	defaultFeaturedLimit = 3
	maxArticleLimit      = 50
)

// NewsHandler serves CMS content in the request locale.
type NewsHandler struct {
	newsService *service.NewsService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// Articles handles GET requests for the latest articles.
//
// Endpoint: GET /api/news?limit=
// Response: 200 OK with array of Article
// Error: 400 Bad Request if limit is not a positive integer
// Error: 502 Bad Gateway if the CMS cannot be reached
func (h *NewsHandler) Articles(w http.ResponseWriter, r *http.Request) {
	limit, err := validation.ValidateLimit(r.URL.Query().Get("limit"), defaultArticleLimit, maxArticleLimit)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveArticles)
		return
	}

	articles, err := h.newsService.Articles(r.Context(), locale.FromContext(r.Context()), limit)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveArticles)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, articles)
}

// FeaturedArticles handles GET requests for the latest featured articles.
//
// Endpoint: GET /api/news/featured?limit=
// Response: 200 OK with array of Article
func (h *NewsHandler) FeaturedArticles(w http.ResponseWriter, r *http.Request) {
	limit, err := validation.ValidateLimit(r.URL.Query().Get("limit"), defaultFeaturedLimit, maxArticleLimit)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveArticles)
		return
	}

	articles, err := h.newsService.FeaturedArticles(r.Context(), locale.FromContext(r.Context()), limit)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveArticles)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, articles)
}

// Article handles GET requests for a single article.
//
// Endpoint: GET /api/news/{slug}
// Response: 200 OK with Article
// Error: 404 Not Found if no locale holds the slug
// Error: 502 Bad Gateway if the CMS cannot be reached
func (h *NewsHandler) Article(w http.ResponseWriter, r *http.Request) {
	article, err := h.newsService.ArticleBySlug(r.Context(), locale.FromContext(r.Context()), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveArticles)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, article)
}

// Hero handles GET requests for the hero content of the locale.
//
// Endpoint: GET /api/hero
// Response: 200 OK with HeroContent
// Error: 404 Not Found if the CMS has no hero content for the locale
func (h *NewsHandler) Hero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.newsService.Hero(r.Context(), locale.FromContext(r.Context()))
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveHero)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, hero)
}

// Promotion handles GET requests for the active promotion popup.
//
// Endpoint: GET /api/promotion
// Response: 200 OK with Promotion, 204 No Content when none is enabled
func (h *NewsHandler) Promotion(w http.ResponseWriter, r *http.Request) {
	promotion, ok, err := h.newsService.Promotion(r.Context())
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrievePromotion)
		return
	}
	if !ok {
		response.RespondJSON(w, r, http.StatusNoContent, nil)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, promotion)
}
