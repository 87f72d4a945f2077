package stats

import (
	"math"
	"testing"

	"github.com/mfreitag/launchdex/pkg/models"
)

func TestCalculate(t *testing.T) {
	ds := models.Dataset{
		Type: "startup-directory",
		Items: []models.Item{
			{ID: "1", Name: "A", Description: "d", Category: "X", Tags: []string{"ai"}, Rating: 4.5},
			{ID: "2", Name: "B", Description: "d2", Category: "Y", Tags: []string{"ml"}, Rating: 2.0},
		},
		Categories: []string{"X", "Y"},
		Tags:       []string{"ai", "ml"},
	}

	got := Calculate(ds)

	if got.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", got.TotalItems)
	}
	if got.TotalCategories != 2 {
		t.Errorf("TotalCategories = %d, want 2", got.TotalCategories)
	}
	if got.TotalTags != 2 {
		t.Errorf("TotalTags = %d, want 2", got.TotalTags)
	}
	if got.AverageRating != 3.25 {
		t.Errorf("AverageRating = %v, want 3.25", got.AverageRating)
	}
}

func TestCalculate_EmptyItems(t *testing.T) {
	ds := models.Dataset{
		Type:       "startup-directory",
		Items:      []models.Item{},
		Categories: []string{"X"},
		Tags:       []string{},
	}

	got := Calculate(ds)

	if got.AverageRating != 0 {
		t.Errorf("AverageRating = %v, want exactly 0 for empty items", got.AverageRating)
	}
	if got.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", got.TotalItems)
	}
	if got.TotalCategories != 1 {
		t.Errorf("TotalCategories = %d, want 1", got.TotalCategories)
	}
}

// Any dataset whose items satisfy the rating invariant yields an average
// within the same bounds.
func TestCalculate_AverageWithinBounds(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
	}{
		{name: "all zero", ratings: []float64{0, 0, 0}},
		{name: "all max", ratings: []float64{5, 5}},
		{name: "mixed", ratings: []float64{0.5, 4.9, 2.2, 3.3}},
		{name: "single", ratings: []float64{1.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]models.Item, len(tt.ratings))
			for i, r := range tt.ratings {
				items[i] = models.Item{Rating: r, Tags: []string{}}
			}

			avg := Calculate(models.Dataset{Items: items}).AverageRating
			if avg < 0 || avg > 5 || math.IsNaN(avg) {
				t.Errorf("AverageRating = %v, outside [0,5]", avg)
			}
		})
	}
}
