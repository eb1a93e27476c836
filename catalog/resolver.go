package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
	"gorm.io/gorm"
)

// ProductFilter narrows ListProducts results. Zero values mean "no
// filter" for each field independently.
type ProductFilter struct {
	CategoryID    string
	SubcategoryID string
	SearchTerm    string
	InStockOnly   bool
}

// Resolver serves catalog reads. When db is nil the remote backend is
// unconfigured and every read is answered from the static snapshot;
// when a remote query fails the same snapshot is substituted, so reads
// never return an error. Absent entities are nil results.
type Resolver struct {
	db *gorm.DB
}

// NewResolver creates a resolver. Pass a nil db to run in fallback
// mode for the whole session.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// BackendAvailable reports whether reads are served from the remote
// backend rather than the static snapshot.
func (r *Resolver) BackendAvailable() bool {
	return r.db != nil
}

// ListCategories returns all categories ordered by name, each with its
// subcategories and their derived product counts.
func (r *Resolver) ListCategories(ctx context.Context) []models.Category {
	if r.db == nil {
		return staticCategoriesResolved()
	}

	categories, err := r.remoteCategories(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("remote category query failed, serving static catalog")
		return staticCategoriesResolved()
	}
	return categories
}

func (r *Resolver) remoteCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}

	var subcategories []models.Subcategory
	if err := r.db.WithContext(ctx).Order("name").Find(&subcategories).Error; err != nil {
		return nil, err
	}

	// Per-subcategory product counts from the live product set.
	var counts []struct {
		SubcategoryID string
		Count         int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT subcategory_id, COUNT(*) AS count
		FROM products
		WHERE subcategory_id IS NOT NULL
		GROUP BY subcategory_id
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	countByID := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByID[c.SubcategoryID] = c.Count
	}

	for i := range categories {
		for _, sub := range subcategories {
			if sub.CategoryID != categories[i].ID {
				continue
			}
			sub.Count = countByID[sub.ID]
			categories[i].Subcategories = append(categories[i].Subcategories, sub)
		}
	}
	return categories, nil
}

// staticCategoriesResolved derives subcategory counts from the static
// product snapshot so both modes use the same computation.
func staticCategoriesResolved() []models.Category {
	countByID := make(map[string]int64)
	for _, p := range staticProducts {
		if p.SubcategoryID != nil {
			countByID[*p.SubcategoryID]++
		}
	}

	categories := StaticCategories()
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
	for i := range categories {
		subs := categories[i].Subcategories
		sort.SliceStable(subs, func(a, b int) bool {
			return strings.ToLower(subs[a].Name) < strings.ToLower(subs[b].Name)
		})
		for j := range subs {
			subs[j].Count = countByID[subs[j].ID]
		}
	}
	return categories
}

// ListProducts returns products matching the filter, ordered by name.
func (r *Resolver) ListProducts(ctx context.Context, filter ProductFilter) []models.Product {
	if r.db == nil {
		return filterStatic(filter)
	}

	products, err := r.remoteProducts(ctx, filter)
	if err != nil {
		// The static fallback honors the filter too, keeping all read
		// paths uniform.
		logx.Error().Err(err).Msg("remote product query failed, serving static catalog")
		return filterStatic(filter)
	}
	return products
}

func (r *Resolver) remoteProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Order("name")
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubcategoryID != "" {
		q = q.Where("subcategory_id = ?", filter.SubcategoryID)
	}
	if filter.InStockOnly {
		q = q.Where("in_stock = ?", true)
	}
	if filter.SearchTerm != "" {
		pattern := "%" + filter.SearchTerm + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// filterStatic applies the remote filter semantics in-memory against
// the static snapshot, sorted by name ascending.
func filterStatic(filter ProductFilter) []models.Product {
	search := strings.ToLower(filter.SearchTerm)
	products := make([]models.Product, 0, len(staticProducts))
	for _, p := range StaticProducts() {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SubcategoryID != "" && (p.SubcategoryID == nil || *p.SubcategoryID != filter.SubcategoryID) {
			continue
		}
		if filter.InStockOnly && !p.InStock {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		products = append(products, p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
	return products
}

// GetProduct returns the product with the given id, or nil when it
// does not exist. Absence is not an error.
func (r *Resolver) GetProduct(ctx context.Context, id string) *models.Product {
	if r.db == nil {
		return staticProduct(id)
	}

	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		logx.Error().Err(err).Str("product_id", id).Msg("remote product lookup failed, serving static catalog")
		return staticProduct(id)
	}
	return &product
}

func staticProduct(id string) *models.Product {
	for _, p := range StaticProducts() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// ListShops returns all active shops ordered by name. Shops only exist
// in the remote backend; fallback mode returns an empty list.
func (r *Resolver) ListShops(ctx context.Context) []models.Shop {
	if r.db == nil {
		return []models.Shop{}
	}

	var shops []models.Shop
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&shops).Error
	if err != nil {
		logx.Error().Err(err).Msg("remote shop query failed")
		return []models.Shop{}
	}
	return shops
}

// GetShop returns the shop with the given id, or nil when it does not
// exist. Always nil in fallback mode.
func (r *Resolver) GetShop(ctx context.Context, id string) *models.Shop {
	if r.db == nil {
		return nil
	}

	var shop models.Shop
	err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logx.Error().Err(err).Str("shop_id", id).Msg("remote shop lookup failed")
		}
		return nil
	}
	return &shop
}

// ListProductsByCategoryName resolves a category by display name and
// lists its products.
func (r *Resolver) ListProductsByCategoryName(ctx context.Context, name string) []models.Product {
	if r.db == nil {
		for _, c := range staticCategories {
			if strings.EqualFold(c.Name, name) {
				return filterStatic(ProductFilter{CategoryID: c.ID})
			}
		}
		return []models.Product{}
	}

	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Product{}
		}
		logx.Error().Err(err).Str("category", name).Msg("remote category lookup failed, serving static catalog")
		for _, c := range staticCategories {
			if strings.EqualFold(c.Name, name) {
				return filterStatic(ProductFilter{CategoryID: c.ID})
			}
		}
		return []models.Product{}
	}
	return r.ListProducts(ctx, ProductFilter{CategoryID: category.ID})
}

// CatalogSize reports the number of browsable products, used by the
// startup readiness signal to the host.
func (r *Resolver) CatalogSize(ctx context.Context) int {
	return len(r.ListProducts(ctx, ProductFilter{}))
}
