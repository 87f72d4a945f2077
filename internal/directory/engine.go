package directory

import (
	"github.com/mfreitag/launchdex/pkg/catalog"
	"github.com/mfreitag/launchdex/pkg/models"
)

// Engine composes the query pipeline over the loaded catalog. The pipeline
// functions themselves stay pure; Engine supplies the dataset and the
// conventional composition order (search, category, tags, rating, sort).
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates an Engine backed by the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Query runs the full pipeline for one filter state.
func (e *Engine) Query(state models.FilterState) ([]models.Item, error) {
	items, err := e.cat.Items()
	if err != nil {
		return nil, err
	}

	items = SearchItems(items, state.SearchQuery)
	items = filterByCategories(items, state.SelectedCategories)
	items = FilterByTags(items, state.SelectedTags)
	items = FilterByMinRating(items, state.MinRating)

	if models.ValidSortMode(state.SortBy) {
		items = SortItems(items, state.SortBy)
	}

	return items, nil
}

// BySlug returns the item with the given slug, if any.
func (e *Engine) BySlug(slug string) (models.Item, bool, error) {
	items, err := e.cat.Items()
	if err != nil {
		return models.Item{}, false, err
	}
	for i := range items {
		if items[i].Slug == slug {
			return items[i], true, nil
		}
	}
	return models.Item{}, false, nil
}

// Categories returns the dataset's category list in insertion order.
func (e *Engine) Categories() ([]string, error) {
	return e.cat.Categories()
}

// Dataset exposes the full validated dataset for export.
func (e *Engine) Dataset() (models.Dataset, error) {
	return e.cat.Dataset()
}

// filterByCategories applies FilterByCategory semantics across a selection:
// an item survives when it matches any selected category.
func filterByCategories(items []models.Item, categories []string) []models.Item {
	switch len(categories) {
	case 0:
		return items
	case 1:
		return FilterByCategory(items, categories[0])
	}

	result := make([]models.Item, 0, len(items))
	for i := range items {
		for _, c := range categories {
			if NormalizeCategoryForURL(items[i].Category) == NormalizeCategoryForURL(c) {
				result = append(result, items[i])
				break
			}
		}
	}
	return result
}
