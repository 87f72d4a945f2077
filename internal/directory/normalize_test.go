package directory

import "testing"

func TestNormalizeCategoryForURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Fintech", want: "fintech"},
		{name: "trims", in: "  DevTools  ", want: "devtools"},
		{name: "mixed case and spaces", in: " AI & ML ", want: "ai & ml"},
		{name: "already normalized", in: "climate", want: "climate"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCategoryForURL(tt.in); got != tt.want {
				t.Errorf("NormalizeCategoryForURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCategoryForURL_Idempotent(t *testing.T) {
	inputs := []string{"Fintech", "  AI & ML ", "devtools", "", "  ", "HEALTHTECH"}
	for _, in := range inputs {
		once := NormalizeCategoryForURL(in)
		twice := NormalizeCategoryForURL(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFindOriginalCategory(t *testing.T) {
	categories := []string{"Fintech", "AI & ML", "DevTools"}

	tests := []struct {
		name       string
		normalized string
		want       string
		found      bool
	}{
		{name: "exact normalized form", normalized: "fintech", want: "Fintech", found: true},
		{name: "original form accepted", normalized: "DevTools", want: "DevTools", found: true},
		{name: "padded input", normalized: " ai & ml ", want: "AI & ML", found: true},
		{name: "unknown", normalized: "gaming", want: "", found: false},
		{name: "empty", normalized: "", want: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindOriginalCategory(tt.normalized, categories)
			if got != tt.want || found != tt.found {
				t.Errorf("FindOriginalCategory(%q) = (%q, %v), want (%q, %v)",
					tt.normalized, got, found, tt.want, tt.found)
			}
		})
	}
}

// Round-trip law: normalizing any category from the list and resolving it
// back yields the original.
func TestFindOriginalCategory_RoundTrip(t *testing.T) {
	categories := []string{"Fintech", "AI & ML", "DevTools", "Healthtech", "Climate"}
	for _, c := range categories {
		got, found := FindOriginalCategory(NormalizeCategoryForURL(c), categories)
		if !found || got != c {
			t.Errorf("round-trip failed for %q: got (%q, %v)", c, got, found)
		}
	}
}
