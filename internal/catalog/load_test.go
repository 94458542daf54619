package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	assert.Len(t, c.Categories, 2)
	assert.Equal(t, 4, c.ItemCount())

	grocery := c.Categories[0]
	assert.True(t, grocery.IsComposite())
	assert.False(t, grocery.IsLeaf())
	assert.Equal(t, "মুদি", grocery.Name.In(LocaleBN))

	household := c.Categories[1]
	assert.True(t, household.IsLeaf())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	assert.Error(t, err)
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"categories": [`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsLeafAndComposite(t *testing.T) {
	path := writeCatalogFile(t, `{
		"categories": [{
			"id": "bad",
			"name": {"en": "Bad"},
			"items": [{"id": "x", "price": 1}],
			"subcategories": [{"id": "y", "items": [{"id": "z", "price": 1}]}]
		}]
	}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both items and subcategories")
}

func TestLoad_RejectsEmptyCategory(t *testing.T) {
	path := writeCatalogFile(t, `{"categories": [{"id": "empty", "name": {"en": "Empty"}}]}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither items nor subcategories")
}

func TestLoad_RejectsNegativePrice(t *testing.T) {
	path := writeCatalogFile(t, `{
		"categories": [{
			"id": "grocery",
			"name": {"en": "Grocery"},
			"items": [{"id": "chips", "price": -5}]
		}]
	}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative price")
}

func TestLoad_RejectsDuplicateTopLevelID(t *testing.T) {
	path := writeCatalogFile(t, `{
		"categories": [
			{"id": "grocery", "items": [{"id": "a", "price": 1}]},
			{"id": "grocery", "items": [{"id": "b", "price": 2}]}
		]
	}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate category id")
}

func TestLocalizedText_Fallback(t *testing.T) {
	both := LocalizedText{En: "Rice", Bn: "চাল"}
	assert.Equal(t, "Rice", both.In(LocaleEN))
	assert.Equal(t, "চাল", both.In(LocaleBN))

	onlyEn := LocalizedText{En: "Rice"}
	assert.Equal(t, "Rice", onlyEn.In(LocaleBN))

	onlyBn := LocalizedText{Bn: "চাল"}
	assert.Equal(t, "চাল", onlyBn.In(LocaleEN))

	assert.True(t, LocalizedText{}.IsZero())
	assert.False(t, onlyBn.IsZero())
}

func TestStore_ReplacePublishesNewSnapshot(t *testing.T) {
	first := &Catalog{Categories: []Category{{ID: "grocery", Items: []Item{{ID: "a", Price: 1}}}}}
	store := NewStore(first)

	assert.Same(t, first, store.Catalog())

	second := &Catalog{Categories: []Category{{ID: "household", Items: []Item{{ID: "b", Price: 2}}}}}
	store.Replace(second)

	assert.Same(t, second, store.Catalog())
	// the first snapshot is untouched for readers that still hold it
	assert.Equal(t, "grocery", first.Categories[0].ID)
}
