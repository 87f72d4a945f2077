package directory

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mfreitag/launchdex/pkg/models"
)

// ItemsResponse is the response for GET /api/v1/directory/items.
type ItemsResponse struct {
	Count  int                `json:"count"`
	Filter models.FilterState `json:"filter"`
	Items  []models.Item      `json:"items"`
}

// CategoryInfo describes one category with its URL form and item count.
type CategoryInfo struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// Handler serves the directory query API.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a directory API handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/directory/items", h.handleListItems)
	mux.HandleFunc("GET /api/v1/directory/items/{slug}", h.handleGetItem)
	mux.HandleFunc("GET /api/v1/directory/categories", h.handleListCategories)
	mux.HandleFunc("GET /api/v1/directory/export", h.handleExport)
}

// handleListItems runs the query pipeline over the dataset.
//
//	@Summary		Query directory items
//	@Description	Returns directory entries filtered by search query, category, tags, and minimum rating, sorted by the requested mode.
//	@Tags			directory
//	@Produce		json
//	@Param			q query string false "Search query (matches name, description, tags)"
//	@Param			category query string false "Category (original or URL-normalized form)"
//	@Param			tags query string false "Comma-separated tags (verbatim match)"
//	@Param			min_rating query number false "Minimum rating, 0-5"
//	@Param			sort query string false "Sort mode" Enums(name-asc, name-desc, rating-asc, rating-desc) default(name-asc)
//	@Success		200 {object} ItemsResponse
//	@Failure		400 {object} map[string]any
//	@Failure		404 {object} map[string]any
//	@Router			/directory/items [get]
func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	state := models.FilterState{
		SearchQuery: r.URL.Query().Get("q"),
		SortBy:      models.SortNameAsc,
	}

	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		// ParseFloat accepts "NaN", which slips through ordered range
		// checks; require the value to prove it is within range.
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(min >= 0 && min <= 5) {
			writeError(w, http.StatusBadRequest, "min_rating must be a number between 0 and 5")
			return
		}
		state.MinRating = min
	}

	if raw := r.URL.Query().Get("sort"); raw != "" {
		mode := models.SortMode(raw)
		if !models.ValidSortMode(mode) {
			writeError(w, http.StatusBadRequest, "sort must be one of name-asc, name-desc, rating-asc, rating-desc")
			return
		}
		state.SortBy = mode
	}

	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				state.SelectedTags = append(state.SelectedTags, tag)
			}
		}
	}

	if category := r.URL.Query().Get("category"); category != "" {
		categories, err := h.engine.Categories()
		if err != nil {
			h.logger.Error("failed to load categories", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load dataset")
			return
		}
		original, ok := FindOriginalCategory(category, categories)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown category: "+category)
			return
		}
		state.SelectedCategories = []string{original}
	}

	items, err := h.engine.Query(state)
	if err != nil {
		h.logger.Error("query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load dataset")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	writeJSON(w, http.StatusOK, ItemsResponse{
		Count:  len(items),
		Filter: state,
		Items:  items,
	})
}

// handleGetItem returns a single item by slug.
//
//	@Summary		Get directory item
//	@Tags			directory
//	@Produce		json
//	@Param			slug path string true "Item slug"
//	@Success		200 {object} models.Item
//	@Failure		404 {object} map[string]any
//	@Router			/directory/items/{slug} [get]
func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	item, found, err := h.engine.BySlug(slug)
	if err != nil {
		h.logger.Error("failed to load item", zap.String("slug", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load dataset")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no item with slug: "+slug)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// handleListCategories returns all categories with URL forms and counts.
//
//	@Summary		List categories
//	@Tags			directory
//	@Produce		json
//	@Success		200 {array} CategoryInfo
//	@Router			/directory/categories [get]
func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ds, err := h.engine.Dataset()
	if err != nil {
		h.logger.Error("failed to load dataset", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load dataset")
		return
	}

	counts := make(map[string]int, len(ds.Categories))
	for i := range ds.Items {
		counts[ds.Items[i].Category]++
	}

	info := make([]CategoryInfo, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		info = append(info, CategoryInfo{
			Name:  c,
			URL:   NormalizeCategoryForURL(c),
			Count: counts[c],
		})
	}

	writeJSON(w, http.StatusOK, info)
}

// handleExport dumps the full dataset as JSON or YAML.
//
//	@Summary		Export dataset
//	@Tags			directory
//	@Produce		json
//	@Param			format query string false "Export format" Enums(json, yaml) default(json)
//	@Success		200 {object} models.Dataset
//	@Failure		400 {object} map[string]any
//	@Router			/directory/export [get]
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ds, err := h.engine.Dataset()
	if err != nil {
		h.logger.Error("failed to load dataset", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load dataset")
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, ds)
	case "yaml":
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		if err := yaml.NewEncoder(w).Encode(ds); err != nil {
			h.logger.Error("yaml export failed", zap.Error(err))
		}
	default:
		writeError(w, http.StatusBadRequest, "format must be json or yaml")
	}
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://launchdex.dev/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
