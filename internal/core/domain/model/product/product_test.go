package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.MustMoneyFromString("19.99"),
		stock,
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product is active with given stock", func(t *testing.T) {
		p := newTestProduct(t, 5)
		assert.True(t, p.IsActive())
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoneyFromString("1.00"), -1)
		require.Error(t, err)
	})

	t.Run("rejects zero-value IDs", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.UUID{}, kernel.NewUUID(), kernel.MustMoneyFromString("1.00"), 1)
		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil product fails validation", func(t *testing.T) {
		var p *product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.Reserve(3))
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("takes stock to exactly zero", func(t *testing.T) {
		p := newTestProduct(t, 2)
		require.NoError(t, p.Reserve(2))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("never goes below zero", func(t *testing.T) {
		p := newTestProduct(t, 1)

		err := p.Reserve(2)
		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrInsufficientStock)

		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.True(t, p.ID().IsEqual(stockErr.ProductID))
		assert.Equal(t, 2, stockErr.Requested)
		assert.Equal(t, 1, stockErr.Available)

		assert.Equal(t, 1, p.Stock(), "failed reserve must not touch stock")
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		p := newTestProduct(t, 5)
		p.Deactivate()

		err := p.Reserve(1)
		require.ErrorIs(t, err, product.ErrProductUnavailable)
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.Error(t, p.Reserve(0))
		require.Error(t, p.Reserve(-1))
	})
}

func TestProduct_Restock(t *testing.T) {
	t.Run("increments stock", func(t *testing.T) {
		p := newTestProduct(t, 0)
		require.NoError(t, p.Restock(4))
		assert.Equal(t, 4, p.Stock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 0)
		require.Error(t, p.Restock(0))
	})
}

func TestProduct_Snapshot(t *testing.T) {
	p := newTestProduct(t, 7)
	snap := p.Snapshot()

	assert.True(t, snap.ProductID.IsEqual(p.ID()))
	assert.True(t, snap.SellerID.IsEqual(p.SellerID()))
	assert.True(t, snap.Price.IsEqual(p.Price()))
	assert.Equal(t, 7, snap.Stock)
	assert.True(t, snap.IsActive)

	// Snapshot is a copy: later mutations must not leak into it.
	require.NoError(t, p.Reserve(7))
	p.ChangePrice(kernel.MustMoneyFromString("29.99"))
	assert.Equal(t, 7, snap.Stock)
	assert.Equal(t, "19.99", snap.Price.String())
}

func TestRestoreProduct(t *testing.T) {
	t.Run("restores inactive product", func(t *testing.T) {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoneyFromString("5.00"), 3, false)
		require.NoError(t, err)
		assert.False(t, p.IsActive())
		assert.Equal(t, 3, p.Stock())
	})
}
