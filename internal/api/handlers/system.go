package handlers

import (
	"net/http"
	"strings"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/coingecko"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService  *service.SystemService
	settingService *service.SettingService
	priceClient    *coingecko.Client
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, settingService *service.SettingService, priceClient *coingecko.Client) *SystemHandler {
	return &SystemHandler{
		systemService:  systemService,
		settingService: settingService,
		priceClient:    priceClient,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve the application version
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}

// SetMarketAPIKey handles PUT requests to store the market-data API key.
// The key is persisted (encrypted when a fernet key is configured) and
// applied to the price client immediately.
//
// Endpoint: PUT /api/system/market-api-key
// Request Body: SetMarketAPIKeyRequest (apiKey)
// Response: 204 No Content
// Error: 400 Bad Request if the body is invalid or the key empty
// Error: 500 Internal Server Error if persisting fails
func (h *SystemHandler) SetMarketAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetMarketAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "apiKey is required")
		return
	}

	if err := h.settingService.SetMarketAPIKey(r.Context(), req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store api key", err.Error())
		return
	}

	h.priceClient.SetAPIKey(req.APIKey)

	response.RespondJSON(w, http.StatusNoContent, nil)
}
