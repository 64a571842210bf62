package handlers

import (
	"net/http"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/response"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
	seriesService *service.SeriesService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, seriesService *service.SeriesService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		seriesService: seriesService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string `json:"status"`
	Database       string `json:"database"`
	SeriesLoadedAt string `json:"series_loaded_at,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(r.Context()); err != nil {
		response.RespondJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	resp := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	if loaded := h.seriesService.LoadedAt(); !loaded.IsZero() {
		resp.SeriesLoadedAt = loaded.Format(time.RFC3339)
	}
	response.RespondJSON(w, r, http.StatusOK, resp)
}

// VersionInfoResponse represents the version check response containing application
// and database version information, feature availability, and migration status.
type VersionInfoResponse struct {
	AppVersion      string          `json:"app_version"`
	DbVersion       int64           `json:"db_version"`
	LatestDbVersion int64           `json:"latest_db_version"`
	Features        map[string]bool `json:"features"`
	MigrationNeeded bool            `json:"migration_needed"`
}

// Version handles GET requests to retrieve version information and feature availability.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
// Error: 500 Internal Server Error if version check fails
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	version, err := h.systemService.CheckVersion(r.Context())
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToGetVersionInfo)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, VersionInfoResponse{
		AppVersion:      version.AppVersion,
		DbVersion:       version.DbVersion,
		LatestDbVersion: version.LatestDbVersion,
		Features:        version.Features,
		MigrationNeeded: version.MigrationNeeded,
	})
}
