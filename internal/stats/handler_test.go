package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mfreitag/launchdex/internal/testutil"
	"github.com/mfreitag/launchdex/pkg/catalog"
)

const statsDataset = `{
	"type": "startup-directory",
	"items": [
		{
			"id": "itm-1", "slug": "a", "name": "A", "description": "d",
			"category": "X", "tags": ["ai"], "rating": 4.5, "createdAt": "2024-01-01",
			"kind": "startup",
			"startup": {"founder": "F", "fundingStage": "Seed", "website": "w", "location": "l"}
		},
		{
			"id": "itm-2", "slug": "b", "name": "B", "description": "d2",
			"category": "Y", "tags": ["ml"], "rating": 2.0, "createdAt": "2024-02-01",
			"kind": "tool",
			"tool": {"maintainer": "M", "license": "MIT", "repoUrl": "r"}
		}
	],
	"categories": ["X", "Y"],
	"tags": ["ai", "ml"]
}`

func TestHandleStats(t *testing.T) {
	cat := catalog.NewFromBytes([]byte(statsDataset), nil)
	h := NewHandler(cat, testutil.Logger())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got HomepageStatistics
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := HomepageStatistics{TotalItems: 2, TotalCategories: 2, TotalTags: 2, AverageRating: 3.25}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func TestHandleStats_LoadFailure(t *testing.T) {
	cat := catalog.NewFromBytes(nil, nil)
	h := NewHandler(cat, testutil.Logger())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content-type = %q, want problem+json", ct)
	}

	var p map[string]any
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode problem body: %v", err)
	}
	if p["detail"] != "failed to load dataset" {
		t.Errorf("detail = %v, want failed to load dataset", p["detail"])
	}
}
