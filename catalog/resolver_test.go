package catalog

import (
	"context"
	"sort"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Most resolver tests run in fallback mode (nil db); the remote-error
// tests below drive the other degradation branch through a database
// whose every query fails.

// failingDB opens a gorm handle over a sqlmock connection with no
// expectations, so the first query of any operation errors.
func failingDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestListProductsFallbackCategoryFilter(t *testing.T) {
	r := NewResolver(nil)

	out := r.ListProducts(context.Background(), ProductFilter{CategoryID: "tools"})

	require.NotEmpty(t, out)
	var wantIDs []string
	for _, p := range StaticProducts() {
		if p.CategoryID == "tools" {
			wantIDs = append(wantIDs, p.ID)
		}
	}
	assert.ElementsMatch(t, wantIDs, ids(out))

	names := make([]string, len(out))
	for i, p := range out {
		names[i] = strings.ToLower(p.Name)
	}
	assert.True(t, sort.StringsAreSorted(names), "fallback listing is name-sorted")
}

func TestListProductsFallbackFiltered(t *testing.T) {
	// Filters apply uniformly on the static path, including search;
	// the fallback never returns the unfiltered snapshot for a
	// filtered request.
	r := NewResolver(nil)

	out := r.ListProducts(context.Background(), ProductFilter{SearchTerm: "drill"})

	require.Len(t, out, 1)
	assert.Equal(t, "pt001", out[0].ID)
}

func TestListProductsFallbackInStockOnly(t *testing.T) {
	r := NewResolver(nil)

	out := r.ListProducts(context.Background(), ProductFilter{InStockOnly: true})

	require.NotEmpty(t, out)
	for _, p := range out {
		assert.True(t, p.InStock)
	}
	assert.Less(t, len(out), len(StaticProducts()), "snapshot contains out-of-stock products")
}

func TestListProductsFallbackSubcategoryAlone(t *testing.T) {
	r := NewResolver(nil)

	out := r.ListProducts(context.Background(), ProductFilter{SubcategoryID: "beverages"})

	require.NotEmpty(t, out)
	for _, p := range out {
		require.NotNil(t, p.SubcategoryID)
		assert.Equal(t, "beverages", *p.SubcategoryID)
	}
}

func TestGetProductFallback(t *testing.T) {
	r := NewResolver(nil)

	p := r.GetProduct(context.Background(), "ht001")
	require.NotNil(t, p)
	assert.Equal(t, "Professional Hammer Set", p.Name)

	assert.Nil(t, r.GetProduct(context.Background(), "does-not-exist"), "absence is not an error")
}

func TestListCategoriesFallbackDerivedCounts(t *testing.T) {
	r := NewResolver(nil)

	categories := r.ListCategories(context.Background())
	require.Len(t, categories, 3)

	// Counts come from the product snapshot, not baked-in constants.
	wantCounts := make(map[string]int64)
	for _, p := range StaticProducts() {
		if p.SubcategoryID != nil {
			wantCounts[*p.SubcategoryID]++
		}
	}

	seen := 0
	for _, c := range categories {
		require.NotEmpty(t, c.Subcategories)
		for _, sub := range c.Subcategories {
			assert.Equal(t, c.ID, sub.CategoryID)
			assert.Equal(t, wantCounts[sub.ID], sub.Count, "count for %s", sub.ID)
			seen++
		}
	}
	assert.Equal(t, 14, seen)
}

func TestListCategoriesFallbackNameOrdered(t *testing.T) {
	r := NewResolver(nil)

	categories := r.ListCategories(context.Background())
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = strings.ToLower(c.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
}

func TestShopsUnavailableInFallbackMode(t *testing.T) {
	r := NewResolver(nil)

	assert.Empty(t, r.ListShops(context.Background()))
	assert.Nil(t, r.GetShop(context.Background(), "any"))
}

func TestListProductsByCategoryNameFallback(t *testing.T) {
	r := NewResolver(nil)

	out := r.ListProductsByCategoryName(context.Background(), "tools")
	require.NotEmpty(t, out)
	for _, p := range out {
		assert.Equal(t, "tools", p.CategoryID)
	}

	assert.Empty(t, r.ListProductsByCategoryName(context.Background(), "no such category"))
}

func TestListProductsRemoteErrorFallsBackFiltered(t *testing.T) {
	// A remote failure substitutes the static snapshot with the filter
	// still applied, never the unfiltered snapshot.
	r := NewResolver(failingDB(t))
	fallback := NewResolver(nil)
	ctx := context.Background()

	filter := ProductFilter{CategoryID: "tools"}
	out := r.ListProducts(ctx, filter)
	assert.Equal(t, fallback.ListProducts(ctx, filter), out)
	assert.Less(t, len(out), len(StaticProducts()))

	bySearch := r.ListProducts(ctx, ProductFilter{SearchTerm: "drill"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "pt001", bySearch[0].ID)
}

func TestListCategoriesRemoteErrorFallsBack(t *testing.T) {
	r := NewResolver(failingDB(t))
	ctx := context.Background()

	categories := r.ListCategories(ctx)
	assert.Equal(t, NewResolver(nil).ListCategories(ctx), categories)
}

func TestGetProductRemoteErrorFallsBack(t *testing.T) {
	r := NewResolver(failingDB(t))

	p := r.GetProduct(context.Background(), "ht001")
	require.NotNil(t, p)
	assert.Equal(t, "Professional Hammer Set", p.Name)
}

func TestStaticSnapshotIsImmutable(t *testing.T) {
	first := StaticProducts()
	first[0].Name = "mutated"

	second := StaticProducts()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestBackendAvailable(t *testing.T) {
	assert.False(t, NewResolver(nil).BackendAvailable())
}
