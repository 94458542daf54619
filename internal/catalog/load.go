package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and decodes the catalog data file and validates its structural
// invariants. The returned catalog is ready to publish through a Store.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}

	return &catalog, nil
}

// Validate checks the invariants the rest of the code relies on: unique
// top-level category ids, every category leaf xor composite, and no negative
// prices. Colliding subcategory ids are allowed — the resolver's shadowing
// rule covers them.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Categories))

	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.ID == "" {
			return fmt.Errorf("category at index %d has no id", i)
		}
		if _, dup := seen[cat.ID]; dup {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = struct{}{}

		if cat.IsLeaf() && cat.IsComposite() {
			return fmt.Errorf("category %q has both items and subcategories", cat.ID)
		}
		if !cat.IsLeaf() && !cat.IsComposite() {
			return fmt.Errorf("category %q has neither items nor subcategories", cat.ID)
		}

		if err := validateItems(cat.ID, cat.Items); err != nil {
			return err
		}
		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]
			if sub.ID == "" {
				return fmt.Errorf("subcategory at index %d of category %q has no id", j, cat.ID)
			}
			if len(sub.Items) == 0 {
				return fmt.Errorf("subcategory %q of category %q has no items", sub.ID, cat.ID)
			}
			if err := validateItems(sub.ID, sub.Items); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateItems(owner string, items []Item) error {
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			return fmt.Errorf("item at index %d of %q has no id", i, owner)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %q of %q has negative price %d", item.ID, owner, item.Price)
		}
	}
	return nil
}
