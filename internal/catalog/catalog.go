package catalog

// Locale identifies one of the languages the storefront is published in.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleBN Locale = "bn"
)

// LocalizedText holds the same text in every supported locale. The key set is
// closed on purpose: item-facing fields must carry both languages, and a
// missing translation should show up as an empty field, not a missing map key.
type LocalizedText struct {
	En string `json:"en"`
	Bn string `json:"bn"`
}

// In returns the text for the given locale, falling back to the other
// language when the requested one is empty.
func (t LocalizedText) In(locale Locale) string {
	switch locale {
	case LocaleBN:
		if t.Bn != "" {
			return t.Bn
		}
		return t.En
	default:
		if t.En != "" {
			return t.En
		}
		return t.Bn
	}
}

// IsZero reports whether no translation is present at all.
func (t LocalizedText) IsZero() bool {
	return t.En == "" && t.Bn == ""
}

// Item is a single sellable product.
type Item struct {
	ID               string         `json:"id"`
	Name             LocalizedText  `json:"name"`
	ShortDescription LocalizedText  `json:"short_description"`
	LongDescription  *LocalizedText `json:"long_description,omitempty"`
	Price            int64          `json:"price"` // whole taka, never negative
	Brand            *LocalizedText `json:"brand,omitempty"`
	Model            *LocalizedText `json:"model,omitempty"`
	Image            string         `json:"image"`
	URL              string         `json:"url"`
}

// Subcategory is always a leaf: it holds items directly and never nests.
type Subcategory struct {
	ID    string        `json:"id"`
	Name  LocalizedText `json:"name"`
	Items []Item        `json:"items"`
}

// Category is either a leaf (Items populated) or a composite (Subcategories
// populated), never both. Load enforces the invariant; IsLeaf/IsComposite are
// the only way the rest of the code distinguishes the two shapes.
type Category struct {
	ID            string        `json:"id"`
	Name          LocalizedText `json:"name"`
	Items         []Item        `json:"items,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// IsLeaf reports whether the category holds items directly.
func (c *Category) IsLeaf() bool {
	return len(c.Items) > 0
}

// IsComposite reports whether the category holds subcategories.
func (c *Category) IsComposite() bool {
	return len(c.Subcategories) > 0
}

// Catalog is the full product listing, an ordered sequence of categories.
// A loaded catalog is immutable; refreshes publish a new value through the
// Store instead of mutating this one.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// ItemCount returns the number of items across the whole tree.
func (c *Catalog) ItemCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
		for _, sub := range cat.Subcategories {
			n += len(sub.Items)
		}
	}
	return n
}
