// Package models defines the directory data model shared by the catalog
// loader, the query pipeline, and the HTTP API.
package models

// ItemKind discriminates which profile group an item carries.
type ItemKind string

const (
	KindStartup ItemKind = "startup"
	KindTool    ItemKind = "tool"
)

// SortMode selects the ordering applied by the query pipeline.
type SortMode string

const (
	SortNameAsc    SortMode = "name-asc"
	SortNameDesc   SortMode = "name-desc"
	SortRatingAsc  SortMode = "rating-asc"
	SortRatingDesc SortMode = "rating-desc"
)

// StartupProfile holds the fields specific to startup entries.
type StartupProfile struct {
	Founder      string `json:"founder"`
	FundingStage string `json:"fundingStage"`
	Website      string `json:"website"`
	Location     string `json:"location"`
}

// ToolProfile holds the fields specific to tool entries.
type ToolProfile struct {
	Maintainer string `json:"maintainer"`
	License    string `json:"license"`
	RepoURL    string `json:"repoUrl"`
}

// Item is one directory entry. Exactly one profile group is present,
// selected by Kind.
type Item struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	CreatedAt   string   `json:"createdAt"`
	ImageURL    string   `json:"imageUrl,omitempty"`

	Kind    ItemKind        `json:"kind"`
	Startup *StartupProfile `json:"startup,omitempty"`
	Tool    *ToolProfile    `json:"tool,omitempty"`
}

// Dataset is the full directory fixture: items plus the category and tag
// vocabularies. Categories preserve insertion order and contain no
// duplicates; every item category appears in Categories.
type Dataset struct {
	Type       string   `json:"type"`
	Items      []Item   `json:"items"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// FilterState captures one browsing session's query. It is ephemeral UI
// state; the server reconstructs it per request from query parameters.
type FilterState struct {
	SearchQuery        string   `json:"searchQuery"`
	SelectedCategories []string `json:"selectedCategories"`
	SelectedTags       []string `json:"selectedTags"`
	MinRating          float64  `json:"minRating"`
	SortBy             SortMode `json:"sortBy"`
}

// ValidSortMode reports whether s is one of the four supported sort modes.
func ValidSortMode(s SortMode) bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortRatingAsc, SortRatingDesc:
		return true
	}
	return false
}
