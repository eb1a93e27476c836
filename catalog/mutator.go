package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mutator serves admin writes against the remote backend. Writes never
// fall back: without a configured backend every operation fails with
// ErrBackendRequired, and remote errors propagate to the caller so the
// admin UI can surface them.
type Mutator struct {
	db *gorm.DB
}

// NewMutator creates a mutator. Pass a nil db when the backend is
// unconfigured; all writes will then fail fast.
func NewMutator(db *gorm.DB) *Mutator {
	return &Mutator{db: db}
}

// CreateProduct inserts a product and returns the persisted row. A
// missing ID is assigned client-side.
func (m *Mutator) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if m.db == nil {
		return nil, ErrBackendRequired
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := m.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// UpdateProduct applies a partial update and returns the persisted row.
func (m *Mutator) UpdateProduct(ctx context.Context, id string, updates map[string]any) (*models.Product, error) {
	if m.db == nil {
		return nil, ErrBackendRequired
	}
	if err := validateProductUpdates(updates); err != nil {
		return nil, err
	}

	res := m.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var product models.Product
	if err := m.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload product %s: %w", id, err)
	}
	return &product, nil
}

// DeleteProduct removes a product by id.
func (m *Mutator) DeleteProduct(ctx context.Context, id string) error {
	if m.db == nil {
		return ErrBackendRequired
	}
	if err := m.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// CreateShop inserts a shop and returns the persisted row.
func (m *Mutator) CreateShop(ctx context.Context, shop *models.Shop) (*models.Shop, error) {
	if m.db == nil {
		return nil, ErrBackendRequired
	}
	if shop.Name == "" {
		return nil, fmt.Errorf("%w: shop name is required", ErrValidation)
	}
	if shop.ID == "" {
		shop.ID = uuid.NewString()
	}
	if err := m.db.WithContext(ctx).Create(shop).Error; err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}
	return shop, nil
}

// UpdateShop applies a partial update and returns the persisted row.
func (m *Mutator) UpdateShop(ctx context.Context, id string, updates map[string]any) (*models.Shop, error) {
	if m.db == nil {
		return nil, ErrBackendRequired
	}

	res := m.db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update shop %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var shop models.Shop
	if err := m.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload shop %s: %w", id, err)
	}
	return &shop, nil
}

// DeleteShop removes a shop by id.
func (m *Mutator) DeleteShop(ctx context.Context, id string) error {
	if m.db == nil {
		return ErrBackendRequired
	}
	if err := m.db.WithContext(ctx).Delete(&models.Shop{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete shop %s: %w", id, err)
	}
	return nil
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.CategoryID == "" {
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock_quantity must not be negative", ErrValidation)
	}
	return nil
}

func validateProductUpdates(updates map[string]any) error {
	if price, ok := updates["price"]; ok {
		if v, ok := numericValue(price); ok && v < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
	}
	if qty, ok := updates["stock_quantity"]; ok {
		if v, ok := numericValue(qty); ok && v < 0 {
			return fmt.Errorf("%w: stock_quantity must not be negative", ErrValidation)
		}
	}
	return nil
}

// numericValue normalizes the number representations an update map can
// carry: JSON decoding yields float64 or json.Number, direct callers
// pass native ints.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
