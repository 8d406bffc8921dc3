package paymentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new payment confirmation.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Confirmation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the applied flag of an existing confirmation.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Confirmation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentConfirmationDTO{}).
		Where("id = ?", dto.ID).
		Update("applied", dto.Applied)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the confirmation recorded for an order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Confirmation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentConfirmationDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment confirmation for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstUnapplied retrieves the oldest confirmation the sweep has not yet
// consumed.
func (r *GormPaymentRepository) GetFirstUnapplied(ctx context.Context) (*payment.Confirmation, error) {
	var dto PaymentConfirmationDTO
	err := r.db.WithContext(ctx).
		Where("applied = ?", false).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrConfirmationNotFound
		}
		return nil, err
	}

	return toDomain(dto)
}
