package catalog

import "go.uber.org/zap"

// Validator checks untrusted decoded JSON against the directory item and
// dataset shapes. Checks are shallow and fail at the first unmet condition;
// the failing path is reported through the logger, not the return value.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a Validator. A nil logger disables diagnostics.
func NewValidator(logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{logger: logger}
}

// IsValidItem reports whether candidate has the base item shape: an object
// with string name, category, and description, a tags array of strings, and
// a numeric rating within [0, 5]. Other fields (id, slug, createdAt, profile
// groups) are intentionally not checked here; the loader owns those.
func (v *Validator) IsValidItem(candidate any) bool {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		v.logger.Debug("invalid item: not an object")
		return false
	}

	for _, field := range []string{"name", "category", "description"} {
		if _, ok := obj[field].(string); !ok {
			v.logger.Debug("invalid item: field is not a string", zap.String("field", field))
			return false
		}
	}

	tags, ok := obj["tags"].([]any)
	if !ok {
		v.logger.Debug("invalid item: tags is not an array")
		return false
	}
	for i, tag := range tags {
		if _, ok := tag.(string); !ok {
			v.logger.Debug("invalid item: tag is not a string", zap.Int("index", i))
			return false
		}
	}

	rating, ok := obj["rating"].(float64)
	if !ok {
		v.logger.Debug("invalid item: rating is not a number")
		return false
	}
	if rating < 0 || rating > 5 {
		v.logger.Debug("invalid item: rating out of range", zap.Float64("rating", rating))
		return false
	}

	return true
}

// IsValidDataset reports whether candidate has the dataset shape (string
// type, arrays items/categories/tags) and every element of items passes
// IsValidItem. Validation is all-or-nothing; indices of invalid items are
// logged for diagnosis.
func (v *Validator) IsValidDataset(candidate any) bool {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		v.logger.Debug("invalid dataset: not an object")
		return false
	}

	if _, ok := obj["type"].(string); !ok {
		v.logger.Debug("invalid dataset: type is not a string")
		return false
	}

	items, ok := obj["items"].([]any)
	if !ok {
		v.logger.Debug("invalid dataset: items is not an array")
		return false
	}
	for _, field := range []string{"categories", "tags"} {
		if _, ok := obj[field].([]any); !ok {
			v.logger.Debug("invalid dataset: field is not an array", zap.String("field", field))
			return false
		}
	}

	var invalid []int
	for i, item := range items {
		if !v.IsValidItem(item) {
			invalid = append(invalid, i)
		}
	}
	if len(invalid) > 0 {
		v.logger.Warn("dataset contains invalid items", zap.Ints("indices", invalid))
		return false
	}

	return true
}
