package middleware

import (
	"net/http"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
)

// Locale resolves the request locale from the lang query parameter, the lang
// cookie or Accept-Language and stores it on the request context.
// Handlers read it with locale.FromContext.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := locale.Resolve(r)
		w.Header().Set("Content-Language", l.Language)
		next.ServeHTTP(w, r.WithContext(locale.WithLocale(r.Context(), l)))
	})
}
