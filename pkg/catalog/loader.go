// Package catalog provides lazy-loaded access to the embedded directory
// dataset and the validation predicates that guard it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mfreitag/launchdex/pkg/models"
)

//go:embed dataset.json
var datasetRawData []byte

// Catalog parses and validates the dataset on first access and caches the
// result for the process lifetime. The cached dataset is never mutated;
// accessors hand out copies of the top-level slices.
type Catalog struct {
	raw    []byte
	logger *zap.Logger

	once sync.Once
	ds   models.Dataset
	err  error
}

// New creates a Catalog backed by the embedded dataset fixture.
func New(logger *zap.Logger) *Catalog {
	return NewFromBytes(datasetRawData, logger)
}

// NewFromBytes creates a Catalog over an arbitrary JSON document. Used by
// tests and the validate subcommand.
func NewFromBytes(data []byte, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{raw: data, logger: logger}
}

// Dataset returns the validated dataset. The returned value shares item
// storage with the cache and must be treated as read-only.
func (c *Catalog) Dataset() (models.Dataset, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return models.Dataset{}, c.err
	}
	return c.ds, nil
}

// Items returns a copy of the item slice.
func (c *Catalog) Items() ([]models.Item, error) {
	ds, err := c.Dataset()
	if err != nil {
		return nil, err
	}
	cp := make([]models.Item, len(ds.Items))
	copy(cp, ds.Items)
	return cp, nil
}

// Categories returns a copy of the category list in insertion order.
func (c *Catalog) Categories() ([]string, error) {
	ds, err := c.Dataset()
	if err != nil {
		return nil, err
	}
	cp := make([]string, len(ds.Categories))
	copy(cp, ds.Categories)
	return cp, nil
}

// Tags returns a copy of the tag vocabulary.
func (c *Catalog) Tags() ([]string, error) {
	ds, err := c.Dataset()
	if err != nil {
		return nil, err
	}
	cp := make([]string, len(ds.Tags))
	copy(cp, ds.Tags)
	return cp, nil
}

// load parses, validates, and integrity-checks the raw dataset document.
func (c *Catalog) load() {
	if len(c.raw) == 0 {
		c.err = fmt.Errorf("catalog: dataset source is empty")
		c.logger.Error("dataset load failed", zap.Error(c.err))
		return
	}

	var decoded any
	if err := json.Unmarshal(c.raw, &decoded); err != nil {
		c.err = fmt.Errorf("catalog: parse dataset json: %w", err)
		c.logger.Error("dataset load failed", zap.Error(c.err))
		return
	}

	v := NewValidator(c.logger)
	if !v.IsValidDataset(decoded) {
		c.err = fmt.Errorf("catalog: dataset failed validation")
		c.logger.Error("dataset load failed", zap.Error(c.err))
		return
	}

	var ds models.Dataset
	if err := json.Unmarshal(c.raw, &ds); err != nil {
		c.err = fmt.Errorf("catalog: decode dataset: %w", err)
		c.logger.Error("dataset load failed", zap.Error(c.err))
		return
	}

	if err := checkIntegrity(&ds); err != nil {
		c.err = fmt.Errorf("catalog: %w", err)
		c.logger.Error("dataset load failed", zap.Error(c.err))
		return
	}

	c.ds = ds
	c.logger.Info("dataset loaded",
		zap.String("type", ds.Type),
		zap.Int("items", len(ds.Items)),
		zap.Int("categories", len(ds.Categories)),
		zap.Int("tags", len(ds.Tags)),
	)
}

// checkIntegrity enforces the dataset-level invariants the shallow item
// validator does not cover: unique ids and slugs, unique categories, every
// item category present in the category list, and exactly one profile group
// per item matching its kind.
func checkIntegrity(ds *models.Dataset) error {
	seenIDs := make(map[string]struct{}, len(ds.Items))
	seenSlugs := make(map[string]struct{}, len(ds.Items))

	categories := make(map[string]struct{}, len(ds.Categories))
	for _, cat := range ds.Categories {
		if _, dup := categories[cat]; dup {
			return fmt.Errorf("duplicate category %q", cat)
		}
		categories[cat] = struct{}{}
	}

	for i := range ds.Items {
		it := &ds.Items[i]

		if it.ID == "" {
			return fmt.Errorf("item %d: missing id", i)
		}
		if _, dup := seenIDs[it.ID]; dup {
			return fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seenIDs[it.ID] = struct{}{}

		if it.Slug == "" {
			return fmt.Errorf("item %d (%s): missing slug", i, it.ID)
		}
		if _, dup := seenSlugs[it.Slug]; dup {
			return fmt.Errorf("item %d (%s): duplicate slug %q", i, it.ID, it.Slug)
		}
		seenSlugs[it.Slug] = struct{}{}

		if _, ok := categories[it.Category]; !ok {
			return fmt.Errorf("item %d (%s): category %q not in category list", i, it.ID, it.Category)
		}

		if it.Tags == nil {
			return fmt.Errorf("item %d (%s): tags must be present", i, it.ID)
		}

		switch it.Kind {
		case models.KindStartup:
			if it.Startup == nil || it.Tool != nil {
				return fmt.Errorf("item %d (%s): kind startup requires exactly the startup profile", i, it.ID)
			}
		case models.KindTool:
			if it.Tool == nil || it.Startup != nil {
				return fmt.Errorf("item %d (%s): kind tool requires exactly the tool profile", i, it.ID)
			}
		default:
			return fmt.Errorf("item %d (%s): unknown kind %q", i, it.ID, it.Kind)
		}
	}

	return nil
}
