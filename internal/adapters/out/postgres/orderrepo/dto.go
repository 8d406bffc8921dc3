// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order persists together with its items; items are
// written once at checkout and never updated.
package orderrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number            string     `gorm:"uniqueIndex"`
	BuyerID           uuid.UUID  `gorm:"type:uuid;index"`
	ShippingAddressID uuid.UUID  `gorm:"type:uuid"`
	BillingAddressID  *uuid.UUID `gorm:"type:uuid"`
	PaymentMethod     string
	Status            int             `gorm:"index"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax               decimal.Decimal `gorm:"type:numeric(12,2)"`
	Shipping          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2)"`
	Version           int

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. seller_id is denormalized
// onto the row so seller-scoped queries never need the product table.
type OrderItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;index"`
	SellerID        uuid.UUID       `gorm:"type:uuid;index"`
	Quantity        int
	UnitPriceAtTime decimal.Decimal `gorm:"type:numeric(12,2)"`
	LineTotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var billingID *uuid.UUID
	if id := aggregate.BillingAddressID(); id != nil {
		raw := id.Bytes()
		billingID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			SellerID:        item.SellerID().Bytes(),
			Quantity:        item.Quantity(),
			UnitPriceAtTime: item.UnitPriceAtTime().Decimal(),
			LineTotal:       item.LineTotal().Decimal(),
		})
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Number:            aggregate.Number().String(),
		BuyerID:           aggregate.BuyerID().Bytes(),
		ShippingAddressID: aggregate.ShippingAddressID().Bytes(),
		BillingAddressID:  billingID,
		PaymentMethod:     aggregate.PaymentMethod(),
		Status:            int(aggregate.Status()),
		Subtotal:          totals.Subtotal.Decimal(),
		Tax:               totals.Tax.Decimal(),
		Shipping:          totals.Shipping.Decimal(),
		Total:             totals.Total.Decimal(),
		Version:           aggregate.Version(),
		Items:             items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	shippingAddressID, err := kernel.UUIDFromBytes(dto.ShippingAddressID[:])
	if err != nil {
		return nil, err
	}

	var billingAddressID *kernel.UUID
	if dto.BillingAddressID != nil {
		bID, billingErr := kernel.UUIDFromBytes((*dto.BillingAddressID)[:])
		if billingErr != nil {
			return nil, billingErr
		}
		billingAddressID = &bID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totals, err := toDomainTotals(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		buyerID,
		shippingAddressID,
		billingAddressID,
		dto.PaymentMethod,
		items,
		totals,
		order.Status(dto.Status),
		dto.Version,
	)
}

func toDomainItem(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceAtTime)
	if err != nil {
		return order.Item{}, err
	}

	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, productID, sellerID, dto.Quantity, unitPrice, lineTotal)
}

func toDomainTotals(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Totals{}, err
	}
	shipping, err := kernel.NewMoney(dto.Shipping)
	if err != nil {
		return order.Totals{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Totals{}, err
	}

	return order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}, nil
}
