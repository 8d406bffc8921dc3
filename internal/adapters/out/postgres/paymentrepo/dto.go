// Package paymentrepo provides data transfer objects and mapping functions
// for payment confirmation persistence.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

// PaymentConfirmationDTO represents the database structure for persisting
// payment confirmations. created_at orders the sweep; the unique index on
// order_id rejects duplicate webhook deliveries at the storage level.
type PaymentConfirmationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Reference string
	Applied   bool      `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for payment confirmation entities.
func (PaymentConfirmationDTO) TableName() string {
	return "payment_confirmations"
}

func fromDomain(aggregate *payment.Confirmation) PaymentConfirmationDTO {
	return PaymentConfirmationDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Reference: aggregate.Reference(),
		Applied:   aggregate.IsApplied(),
	}
}

func toDomain(dto PaymentConfirmationDTO) (*payment.Confirmation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestoreConfirmation(id, orderID, dto.Reference, dto.Applied)
}
