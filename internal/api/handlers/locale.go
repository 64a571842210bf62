package handlers

import (
	"net/http"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/response"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
)

// Locale handles GET requests for the locale resolved for the request.
//
// Endpoint: GET /api/locale
// Response: 200 OK with {language, direction}
func Locale(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, r, http.StatusOK, locale.FromContext(r.Context()))
}
