package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// Handlers under test read them with chi.URLParam().
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/fund/"+fund.ID+"/periods",
//	    map[string]string{"uuid": fund.ID},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	return NewRequestWithBody(method, path, "", params)
}

// NewRequestWithBody creates an HTTP request with a JSON body and chi URL
// parameters. An empty body sends no body.
//
// Example:
//
//	req := testutil.NewRequestWithBody(
//	    http.MethodPost,
//	    "/api/fund/"+fund.ID+"/calculator",
//	    `{"deposit": 5000, "timeframe": "5Y"}`,
//	    map[string]string{"uuid": fund.ID},
//	)
func NewRequestWithBody(method, path, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewRequestWithQueryParams creates an HTTP request with query parameters.
//
// Example:
//
//	req := testutil.NewRequestWithQueryParams(
//	    http.MethodGet,
//	    "/api/news",
//	    map[string]string{"limit": "5"},
//	)
func NewRequestWithQueryParams(method, path string, queryParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(queryParams) > 0 {
		q := req.URL.Query()
		for key, value := range queryParams {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req
}

// WithLocale returns req carrying the locale of code, as the locale
// middleware would set it.
func WithLocale(req *http.Request, code string) *http.Request {
	l, _ := locale.New(code)
	return req.WithContext(locale.WithLocale(req.Context(), l))
}
