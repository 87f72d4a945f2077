package stats

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mfreitag/launchdex/pkg/catalog"
)

// Handler serves the statistics API.
type Handler struct {
	cat    *catalog.Catalog
	logger *zap.Logger
}

// NewHandler creates a statistics handler over the given catalog.
func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{cat: cat, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/stats", h.handleStats)
}

// handleStats returns homepage statistics for the dataset.
//
//	@Summary		Get homepage statistics
//	@Tags			stats
//	@Produce		json
//	@Success		200 {object} HomepageStatistics
//	@Failure		500 {object} map[string]any
//	@Router			/stats [get]
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ds, err := h.cat.Dataset()
	if err != nil {
		h.logger.Error("failed to load dataset", zap.Error(err))
		writeStatsError(w, http.StatusInternalServerError, "failed to load dataset")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Calculate(ds))
}

func writeStatsError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://launchdex.dev/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
