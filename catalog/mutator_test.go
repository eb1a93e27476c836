package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutatorFailsFastWithoutBackend(t *testing.T) {
	m := NewMutator(nil)
	ctx := context.Background()

	_, err := m.CreateProduct(ctx, &models.Product{Name: "Crowbar", CategoryID: "tools", Price: 25})
	assert.ErrorIs(t, err, ErrBackendRequired)

	_, err = m.UpdateProduct(ctx, "ht001", map[string]any{"price": 10.0})
	assert.ErrorIs(t, err, ErrBackendRequired)

	assert.ErrorIs(t, m.DeleteProduct(ctx, "ht001"), ErrBackendRequired)

	_, err = m.CreateShop(ctx, &models.Shop{Name: "Ammu-Nation"})
	assert.ErrorIs(t, err, ErrBackendRequired)

	_, err = m.UpdateShop(ctx, "s1", map[string]any{"name": "Renamed"})
	assert.ErrorIs(t, err, ErrBackendRequired)

	assert.ErrorIs(t, m.DeleteShop(ctx, "s1"), ErrBackendRequired)
}

func TestValidateProduct(t *testing.T) {
	valid := &models.Product{Name: "Crowbar", CategoryID: "tools", Price: 25, StockQuantity: 3}
	require.NoError(t, validateProduct(valid))

	cases := []struct {
		name    string
		product models.Product
	}{
		{"missing name", models.Product{CategoryID: "tools", Price: 1}},
		{"missing category", models.Product{Name: "Crowbar", Price: 1}},
		{"negative price", models.Product{Name: "Crowbar", CategoryID: "tools", Price: -1}},
		{"negative stock", models.Product{Name: "Crowbar", CategoryID: "tools", Price: 1, StockQuantity: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validateProduct(&tc.product), ErrValidation)
		})
	}
}

func TestValidateProductUpdates(t *testing.T) {
	assert.NoError(t, validateProductUpdates(map[string]any{"price": 12.5}))
	assert.NoError(t, validateProductUpdates(map[string]any{"name": "Renamed"}))
	assert.ErrorIs(t, validateProductUpdates(map[string]any{"price": -0.01}), ErrValidation)
	assert.ErrorIs(t, validateProductUpdates(map[string]any{"stock_quantity": -1.0}), ErrValidation)
}

func TestValidateProductUpdatesNumericRepresentations(t *testing.T) {
	// Direct callers pass native ints, JSON decoders with UseNumber
	// pass json.Number; a negative price must be caught either way.
	assert.ErrorIs(t, validateProductUpdates(map[string]any{"price": -5}), ErrValidation)
	assert.ErrorIs(t, validateProductUpdates(map[string]any{"price": int64(-5)}), ErrValidation)
	assert.ErrorIs(t, validateProductUpdates(map[string]any{"price": json.Number("-5")}), ErrValidation)
	assert.ErrorIs(t, validateProductUpdates(map[string]any{"stock_quantity": -1}), ErrValidation)
	assert.NoError(t, validateProductUpdates(map[string]any{"price": int64(5)}))
	assert.NoError(t, validateProductUpdates(map[string]any{"price": json.Number("5.5")}))
}
