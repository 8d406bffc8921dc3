// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Stock lives in a single row per product; the
// repository exposes a locked read so checkout can decrement it safely under
// concurrency.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID       `gorm:"type:uuid;index"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock    int
	IsActive bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID().Bytes(),
		SellerID: aggregate.SellerID().Bytes(),
		Price:    aggregate.Price().Decimal(),
		Stock:    aggregate.Stock(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, sellerID, price, dto.Stock, dto.IsActive)
}

func toSnapshot(dto ProductDTO) (product.Snapshot, error) {
	aggregate, err := toDomain(dto)
	if err != nil {
		return product.Snapshot{}, err
	}
	return aggregate.Snapshot(), nil
}
