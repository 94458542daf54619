package catalog

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("product not found")
)

// Section is what a category identifier resolves to: a top-level category or
// one of its subcategories, seen through a common shape. Subcategories of a
// composite category are carried along so callers can render navigation.
type Section struct {
	ID            string        `json:"id"`
	Name          LocalizedText `json:"name"`
	Items         []Item        `json:"items,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// ResolveCategory locates a category or subcategory by id. Top-level
// categories are scanned first in declaration order; only if none matches are
// subcategories scanned, category by category. A subcategory whose id
// collides with a top-level category id is therefore unreachable here — the
// shadowing is inherited behavior and kept as is rather than turned into a
// precedence rule.
func (c *Catalog) ResolveCategory(id string) (*Section, error) {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			cat := &c.Categories[i]
			return &Section{
				ID:            cat.ID,
				Name:          cat.Name,
				Items:         cat.Items,
				Subcategories: cat.Subcategories,
			}, nil
		}
	}

	for i := range c.Categories {
		for j := range c.Categories[i].Subcategories {
			if c.Categories[i].Subcategories[j].ID == id {
				sub := &c.Categories[i].Subcategories[j]
				return &Section{
					ID:    sub.ID,
					Name:  sub.Name,
					Items: sub.Items,
				}, nil
			}
		}
	}

	return nil, ErrCategoryNotFound
}

// ResolveItem locates an item by the pair (categoryID, itemID). The category
// is resolved first with the same shadowing rule as ResolveCategory; a
// composite category never matches an item directly, so asking a parent
// category for an item that lives in one of its subcategories fails with
// ErrItemNotFound.
func (c *Catalog) ResolveItem(categoryID, itemID string) (*Item, error) {
	section, err := c.ResolveCategory(categoryID)
	if err != nil {
		return nil, err
	}

	for i := range section.Items {
		if section.Items[i].ID == itemID {
			return &section.Items[i], nil
		}
	}

	return nil, ErrItemNotFound
}
