package catalog

import (
	"testing"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineFixture() []models.Product {
	sub := func(s string) *string { return &s }
	return []models.Product{
		{ID: "w1", Name: "Combat Pistol", Price: 850, CategoryID: "1", SubcategoryID: sub("pistols"),
			Description: "Reliable sidearm", Tags: []string{"weapon", "sidearm"}},
		{ID: "w2", Name: "Baseball Bat", Price: 120, CategoryID: "2",
			Description: "Wooden bat", Tags: []string{"melee"}},
		{ID: "w3", Name: "Assault Rifle", Price: 2500, CategoryID: "1", SubcategoryID: sub("rifles"),
			Description: "Standard issue rifle", Tags: []string{"weapon", "automatic"}},
		{ID: "w4", Name: "armor vest", Price: 450, CategoryID: "3",
			Description: "Body protection", Tags: []string{"gear"}},
	}
}

func TestResolveDefaultSortByName(t *testing.T) {
	out := Resolve(pipelineFixture(), ResolveOptions{})

	require.Len(t, out, 4)
	assert.Equal(t, []string{"w4", "w3", "w2", "w1"}, ids(out), "case-folded name order")
}

func TestResolvePriceHighScenario(t *testing.T) {
	products := []models.Product{
		{ID: "w1", CategoryID: "1", Price: 850},
		{ID: "w3", CategoryID: "1", Price: 2500},
	}

	out := Resolve(products, ResolveOptions{SortKey: SortPriceHigh})
	assert.Equal(t, []string{"w3", "w1"}, ids(out))
}

func TestResolvePriceLow(t *testing.T) {
	out := Resolve(pipelineFixture(), ResolveOptions{SortKey: SortPriceLow})
	assert.Equal(t, []string{"w2", "w4", "w1", "w3"}, ids(out))
}

func TestResolveUnknownSortKeyDefaultsToName(t *testing.T) {
	out := Resolve(pipelineFixture(), ResolveOptions{SortKey: "bogus"})
	assert.Equal(t, ids(Resolve(pipelineFixture(), ResolveOptions{})), ids(out))
}

func TestResolveCategoryFilter(t *testing.T) {
	out := Resolve(pipelineFixture(), ResolveOptions{CategoryID: "1"})

	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, "1", p.CategoryID)
	}
}

func TestResolveSubcategoryWithoutCategoryFilter(t *testing.T) {
	// A subcategory filter alone still matches by subcategory id.
	out := Resolve(pipelineFixture(), ResolveOptions{SubcategoryID: "rifles"})

	require.Len(t, out, 1)
	assert.Equal(t, "w3", out[0].ID)
}

func TestResolveSearchMatchesNameDescriptionAndTags(t *testing.T) {
	byName := Resolve(pipelineFixture(), ResolveOptions{SearchTerm: "PISTOL"})
	require.Len(t, byName, 1)
	assert.Equal(t, "w1", byName[0].ID)

	byDescription := Resolve(pipelineFixture(), ResolveOptions{SearchTerm: "wooden"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "w2", byDescription[0].ID)

	byTag := Resolve(pipelineFixture(), ResolveOptions{SearchTerm: "automatic"})
	require.Len(t, byTag, 1)
	assert.Equal(t, "w3", byTag[0].ID)
}

func TestResolveOutputIsSubsetOfInput(t *testing.T) {
	products := pipelineFixture()
	inputIDs := make(map[string]bool)
	for _, p := range products {
		inputIDs[p.ID] = true
	}

	out := Resolve(products, ResolveOptions{CategoryID: "1", SearchTerm: "weapon", SortKey: SortPriceLow})
	for _, p := range out {
		assert.True(t, inputIDs[p.ID])
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	opts := ResolveOptions{CategoryID: "1", SearchTerm: "rifle", SortKey: SortPriceHigh}

	once := Resolve(pipelineFixture(), opts)
	twice := Resolve(once, opts)
	assert.Equal(t, once, twice)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	products := pipelineFixture()
	original := ids(products)

	Resolve(products, ResolveOptions{SortKey: SortPriceHigh})
	assert.Equal(t, original, ids(products))
}

func TestResolveStableForEqualKeys(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "Same", Price: 10},
		{ID: "b", Name: "Same", Price: 10},
		{ID: "c", Name: "Same", Price: 10},
	}

	out := Resolve(products, ResolveOptions{SortKey: SortPriceLow})
	assert.Equal(t, []string{"a", "b", "c"}, ids(out))
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
