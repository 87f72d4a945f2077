// Package directory implements the query pipeline over the directory
// dataset: search, category/tag/rating filters, and sorting.
package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mfreitag/launchdex/pkg/models"
)

// SearchItems returns the items whose name, description, or any tag contains
// the query as a case-insensitive substring. An empty or whitespace-only
// query returns the input unchanged. Input order is preserved and the input
// slice is never mutated.
func SearchItems(items []models.Item, query string) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	result := make([]models.Item, 0, len(items))
	for i := range items {
		if itemMatchesQuery(&items[i], q) {
			result = append(result, items[i])
		}
	}
	return result
}

// itemMatchesQuery checks name, description, then tags against a
// pre-lowered query.
func itemMatchesQuery(it *models.Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterByCategory keeps items whose category equals the given one under
// case- and whitespace-insensitive comparison, so both original-cased names
// and URL-normalized forms match. An empty category returns the input
// unchanged.
func FilterByCategory(items []models.Item, category string) []models.Item {
	want := NormalizeCategoryForURL(category)
	if want == "" {
		return items
	}

	result := make([]models.Item, 0, len(items))
	for i := range items {
		if NormalizeCategoryForURL(items[i].Category) == want {
			result = append(result, items[i])
		}
	}
	return result
}

// FilterByTags keeps items carrying at least one of the requested tags.
// Tags match verbatim (case-sensitive, exact equality), unlike search's
// substring tag matching. An empty tag list returns the input unchanged.
func FilterByTags(items []models.Item, tags []string) []models.Item {
	if len(tags) == 0 {
		return items
	}

	result := make([]models.Item, 0, len(items))
	for i := range items {
		if hasAnyTag(items[i].Tags, tags) {
			result = append(result, items[i])
		}
	}
	return result
}

func hasAnyTag(itemTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range itemTags {
			if t == w {
				return true
			}
		}
	}
	return false
}

// FilterByMinRating keeps items with rating >= min. A min of zero or below
// returns the input unchanged.
func FilterByMinRating(items []models.Item, min float64) []models.Item {
	if min <= 0 {
		return items
	}

	result := make([]models.Item, 0, len(items))
	for i := range items {
		if items[i].Rating >= min {
			result = append(result, items[i])
		}
	}
	return result
}

// SortItems returns a sorted copy of items. Name modes use locale-aware
// collation; rating modes compare numerically. The sort is stable, so ties
// keep their input order. Unknown modes return an unsorted copy.
func SortItems(items []models.Item, sortBy models.SortMode) []models.Item {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)

	switch sortBy {
	case models.SortNameAsc, models.SortNameDesc:
		// A fresh collator per call: collate.Collator carries internal
		// buffers and is not safe for concurrent use.
		c := collate.New(language.English, collate.IgnoreCase)
		desc := sortBy == models.SortNameDesc
		sort.SliceStable(sorted, func(i, j int) bool {
			cmp := c.CompareString(sorted[i].Name, sorted[j].Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	case models.SortRatingAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating < sorted[j].Rating
		})
	case models.SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}
