// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence.
package cartrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartItemDTO represents the database structure for persisting cart items.
// The composite primary key keeps one row per (buyer, product) pair.
type CartItemDTO struct {
	BuyerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for cart item entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.CartItem) CartItemDTO {
	return CartItemDTO{
		BuyerID:   item.BuyerID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
	}
}

func toDomain(dto CartItemDTO) (*cart.CartItem, error) {
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return cart.NewCartItem(buyerID, productID, dto.Quantity)
}
