// Package stats derives homepage summary statistics from the directory
// dataset.
package stats

import "github.com/mfreitag/launchdex/pkg/models"

// HomepageStatistics summarizes the dataset for the landing page.
type HomepageStatistics struct {
	TotalItems      int     `json:"totalItems"`
	TotalCategories int     `json:"totalCategories"`
	TotalTags       int     `json:"totalTags"`
	AverageRating   float64 `json:"averageRating"`
}

// Calculate computes counts and the mean rating. The average is exactly
// zero for an empty item list.
func Calculate(ds models.Dataset) HomepageStatistics {
	s := HomepageStatistics{
		TotalItems:      len(ds.Items),
		TotalCategories: len(ds.Categories),
		TotalTags:       len(ds.Tags),
	}

	if len(ds.Items) == 0 {
		return s
	}

	var sum float64
	for i := range ds.Items {
		sum += ds.Items[i].Rating
	}
	s.AverageRating = sum / float64(len(ds.Items))

	return s
}
