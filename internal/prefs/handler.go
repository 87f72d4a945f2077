package prefs

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ThemeRequest is the body for PUT /api/v1/prefs/theme.
type ThemeRequest struct {
	Theme string `json:"theme" example:"dark"`
}

// ThemeResponse reports the current theme preference.
type ThemeResponse struct {
	Theme string `json:"theme" example:"dark"`
}

// Handler provides HTTP handlers for preference endpoints.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a prefs Handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/prefs/theme", h.handleGetTheme)
	mux.HandleFunc("PUT /api/v1/prefs/theme", h.handleSetTheme)
}

// handleGetTheme returns the stored theme, defaulting to light when unset.
//
//	@Summary		Get theme preference
//	@Tags			prefs
//	@Produce		json
//	@Success		200 {object} ThemeResponse
//	@Failure		500 {object} map[string]any
//	@Router			/prefs/theme [get]
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.Get(r.Context(), "theme")
	if err != nil {
		if err == ErrNotFound {
			writePrefsJSON(w, http.StatusOK, ThemeResponse{Theme: ThemeLight})
			return
		}
		h.logger.Error("failed to get theme preference", zap.Error(err))
		writePrefsError(w, http.StatusInternalServerError, "failed to get theme")
		return
	}

	writePrefsJSON(w, http.StatusOK, ThemeResponse{Theme: p.Value})
}

// handleSetTheme stores the theme preference.
//
//	@Summary		Set theme preference
//	@Tags			prefs
//	@Accept			json
//	@Produce		json
//	@Param			request body ThemeRequest true "Theme to store"
//	@Success		200 {object} ThemeResponse
//	@Failure		400 {object} map[string]any
//	@Failure		500 {object} map[string]any
//	@Router			/prefs/theme [put]
func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePrefsError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Theme != ThemeLight && req.Theme != ThemeDark {
		writePrefsError(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	if err := h.repo.Set(r.Context(), "theme", req.Theme); err != nil {
		h.logger.Error("failed to set theme preference", zap.Error(err))
		writePrefsError(w, http.StatusInternalServerError, "failed to set theme")
		return
	}

	writePrefsJSON(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}

func writePrefsJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writePrefsError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://launchdex.dev/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
