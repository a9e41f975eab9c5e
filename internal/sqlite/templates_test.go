// Template repository tests.
package sqlite

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourava/gourava/pkg/types"
)

func TestCreateTemplateThenGetByID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateTemplate(ctx, "Pizza",
		[]string{"Italian", "Pizza"}, []string{"Taste", "Firmness"})
	require.NoError(t, err)
	require.Positive(t, id)

	tmpl, err := store.TemplateByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(id, 10), tmpl.ID)
	assert.Equal(t, "Pizza", tmpl.Name)
	assert.ElementsMatch(t, []string{"Italian", "Pizza"}, tmpl.Tags)
	assert.ElementsMatch(t, []string{"Taste", "Firmness"}, tmpl.Criteria)
}

func TestTemplateByIDNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.TemplateByID(ctx, 999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTemplatesOnEmptyStoreReturnsEmptyList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	templates, err := store.Templates(ctx)
	require.NoError(t, err)
	assert.Empty(t, templates)
	assert.NotNil(t, templates)
}

func TestTemplatesListsAllWithChildren(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateTemplate(ctx, "Coffee", []string{"drink"}, []string{"Taste"})
	require.NoError(t, err)
	_, err = store.CreateTemplate(ctx, "Book", []string{"paper"}, []string{"Plot", "Prose"})
	require.NoError(t, err)

	templates, err := store.Templates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 2)

	names := []string{templates[0].Name, templates[1].Name}
	assert.ElementsMatch(t, []string{"Coffee", "Book"}, names)
}

func TestUpdateTemplateReplacesChildrenWholesale(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateTemplate(ctx, "Wine", []string{"red"}, []string{"Nose"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateTemplate(ctx, id, "Wine",
		[]string{"red", "white"}, []string{"Nose", "Finish"}))
	// Idempotent: repeating the update must not duplicate children.
	require.NoError(t, store.UpdateTemplate(ctx, id, "Wine",
		[]string{"red", "white"}, []string{"Nose", "Finish"}))

	tmpl, err := store.TemplateByID(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"red", "white"}, tmpl.Tags)
	assert.ElementsMatch(t, []string{"Nose", "Finish"}, tmpl.Criteria)
}

func TestDeleteTemplateRemovesTemplateAndChildren(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateTemplate(ctx, "Doomed", []string{"x"}, []string{"y"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteTemplate(ctx, id))

	_, err = store.TemplateByID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteTemplateNonexistentIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.DeleteTemplate(ctx, 424242))
}

func TestEditingTemplateDoesNotAffectItems(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Copy-on-use: an item created from a template keeps its own rows.
	id, err := store.CreateTemplate(ctx, "Pizza", []string{"Italian"}, []string{"Taste"})
	require.NoError(t, err)

	tmpl, err := store.TemplateByID(ctx, id)
	require.NoError(t, err)

	tags := make([]types.Tag, 0, len(tmpl.Tags))
	for _, name := range tmpl.Tags {
		tags = append(tags, types.Tag{Name: name})
	}
	criteria := make([]types.Criterion, 0, len(tmpl.Criteria))
	for _, name := range tmpl.Criteria {
		criteria = append(criteria, types.Criterion{Name: name, Rating: 4})
	}
	_, err = store.AddItem(ctx, "Margherita", tags, criteria)
	require.NoError(t, err)

	require.NoError(t, store.UpdateTemplate(ctx, id, "Pizza", []string{"Changed"}, []string{"Changed"}))

	items, err := store.Items(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.ElementsMatch(t, []string{"Italian"}, items[0].TagNames())
	assert.ElementsMatch(t,
		[]types.Criterion{{Name: "Taste", Rating: 4}}, items[0].CriteriaRatings)
}
