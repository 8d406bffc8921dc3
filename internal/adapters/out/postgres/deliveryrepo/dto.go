// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The unique index on order_id backs the one-delivery-per-order
// guarantee at the storage level.
type DeliveryDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`
	Status   int        `gorm:"index"`
	Version  int
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		DriverID: driverID,
		Status:   int(aggregate.Status()),
		Version:  aggregate.Version(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return delivery.RestoreDelivery(id, orderID, driverID, delivery.Status(dto.Status), dto.Version)
}
