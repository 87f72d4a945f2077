package directory

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mfreitag/launchdex/pkg/catalog"
	"github.com/mfreitag/launchdex/pkg/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.NewFromBytes([]byte(handlerDataset), nil))
}

func TestEngineQuery_Composition(t *testing.T) {
	engine := newTestEngine(t)

	items, err := engine.Query(models.FilterState{
		SearchQuery:  "a",
		SelectedTags: []string{"ai"},
		MinRating:    3.5,
		SortBy:       models.SortRatingDesc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "a" matches all three names; tag ai keeps alpha and gamma; rating
	// floor 3.5 keeps alpha.
	if diff := cmp.Diff([]string{"alpha"}, slugs(items)); diff != "" {
		t.Errorf("query result mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineQuery_EmptyStateReturnsAll(t *testing.T) {
	engine := newTestEngine(t)

	items, err := engine.Query(models.FilterState{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("empty filter state returned %d items, want 3", len(items))
	}
}

func TestEngineQuery_MultipleCategories(t *testing.T) {
	engine := newTestEngine(t)

	items, err := engine.Query(models.FilterState{
		SelectedCategories: []string{"fintech", "DEVTOOLS"},
		SortBy:             models.SortNameAsc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, slugs(items)); diff != "" {
		t.Errorf("multi-category query mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineQuery_PropagatesLoadError(t *testing.T) {
	engine := NewEngine(catalog.NewFromBytes(nil, nil))

	if _, err := engine.Query(models.FilterState{}); err == nil {
		t.Error("expected load error to propagate through Query")
	}
}

func TestEngineBySlug(t *testing.T) {
	engine := newTestEngine(t)

	item, found, err := engine.BySlug("gamma")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || item.ID != "itm-3" {
		t.Errorf("BySlug(gamma) = (%s, %v), want itm-3 found", item.ID, found)
	}

	_, found, err = engine.BySlug("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("BySlug(nope) should not be found")
	}
}

func slugs(items []models.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Slug
	}
	return out
}
