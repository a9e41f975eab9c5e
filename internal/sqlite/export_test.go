// Export/import protocol tests.
package sqlite

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourava/gourava/pkg/types"
)

func populateStore(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.AddItem(ctx, "Espresso",
		[]types.Tag{{Name: "coffee"}, {Name: "morning"}},
		[]types.Criterion{{Name: "Taste", Rating: 4}, {Name: "Aroma", Rating: 4.5}})
	require.NoError(t, err)

	_, err = store.AddItem(ctx, "Margherita",
		[]types.Tag{{Name: "Pizza"}},
		[]types.Criterion{{Name: "Taste", Rating: 5}})
	require.NoError(t, err)

	_, err = store.CreateTemplate(ctx, "Pizza",
		[]string{"Italian", "Pizza"}, []string{"Taste", "Firmness"})
	require.NoError(t, err)
}

func TestExportAllRoundTripsThroughImport(t *testing.T) {
	ctx := context.Background()
	source := newTestStore(t)
	populateStore(t, source)

	data, err := source.ExportAll(ctx)
	require.NoError(t, err)

	target := newTestStore(t)
	require.NoError(t, target.Import(ctx, data))

	items, err := target.Items(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byTitle := map[string]types.Item{}
	for _, item := range items {
		byTitle[item.Title] = item
	}

	espresso := byTitle["Espresso"]
	assert.ElementsMatch(t, []string{"coffee", "morning"}, espresso.TagNames())
	assert.ElementsMatch(t,
		[]types.Criterion{{Name: "Taste", Rating: 4}, {Name: "Aroma", Rating: 4.5}},
		espresso.CriteriaRatings)

	margherita := byTitle["Margherita"]
	assert.ElementsMatch(t, []string{"Pizza"}, margherita.TagNames())

	templates, err := target.Templates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Pizza", templates[0].Name)
	assert.ElementsMatch(t, []string{"Italian", "Pizza"}, templates[0].Tags)
	assert.ElementsMatch(t, []string{"Taste", "Firmness"}, templates[0].Criteria)
}

func TestExportItemsShape(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	populateStore(t, store)

	data, err := store.ExportItems(ctx)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "items")
	assert.NotContains(t, doc, "templates")

	var parsed struct {
		Items []itemJSON `json:"items"`
	}
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed.Items, 2)
	for _, item := range parsed.Items {
		assert.NotEmpty(t, item.ID)
		for _, c := range item.Criteria {
			require.NotNil(t, c.Rating)
		}
	}
}

func TestExportTemplatesShape(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	populateStore(t, store)

	data, err := store.ExportTemplates(ctx)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "templates")
	assert.NotContains(t, doc, "items")
}

func TestExportEmptyStoreKeepsKeys(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	data, err := store.ExportAll(ctx)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "items")
	assert.Contains(t, doc, "templates")
}

func TestImportSkipsInvalidCriteria(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	doc := `{
  "items": [
    {
      "title": "Flat White",
      "tags": ["coffee"],
      "criteria": [
        {"name": "Taste", "rating": 4},
        {"name": "Broken"},
        {"rating": 3},
        {"name": "Aroma", "rating": 5}
      ]
    }
  ]
}`
	require.NoError(t, store.Import(ctx, []byte(doc)))

	items, err := store.Items(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// The item lands with its valid tags and the two well-formed criteria;
	// the entries missing a rating or a name are dropped.
	assert.ElementsMatch(t, []string{"coffee"}, items[0].TagNames())
	assert.ElementsMatch(t,
		[]types.Criterion{{Name: "Taste", Rating: 4}, {Name: "Aroma", Rating: 5}},
		items[0].CriteriaRatings)
}

func TestImportItemWithoutCriteria(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	doc := `{"items": [{"title": "Bare", "tags": ["x"]}]}`
	require.NoError(t, store.Import(ctx, []byte(doc)))

	items, err := store.Items(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].CriteriaRatings)
}

func TestImportMalformedDocumentAborts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Import(ctx, []byte(`{"items": [`))
	require.Error(t, err)

	items, err := store.Items(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestImportTemplatesOnlyDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	doc := `{"templates": [{"name": "Books", "tags": ["paper"], "criteria": ["Plot"]}]}`
	require.NoError(t, store.Import(ctx, []byte(doc)))

	templates, err := store.Templates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Books", templates[0].Name)

	items, err := store.Items(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestImportAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	populateStore(t, store)

	data, err := store.ExportAll(ctx)
	require.NoError(t, err)

	// Importing into the same store duplicates content under new ids.
	require.NoError(t, store.Import(ctx, data))

	items, err := store.Items(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "ids must be unique")
		seen[item.ID] = true
	}
}
