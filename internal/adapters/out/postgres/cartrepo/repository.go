package cartrepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// GormCartRepository implements CartRepository using GORM. Cart rows are
// plain entities keyed by (buyer, product); nothing is tracked.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{
		db: db,
	}
}

// Upsert inserts the item or replaces the quantity of an existing row.
func (r *GormCartRepository) Upsert(ctx context.Context, item *cart.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "buyer_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(&dto).Error
}

// GetForBuyer retrieves all cart items belonging to the buyer.
func (r *GormCartRepository) GetForBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.CartItem, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Order("product_id").
		Find(&dtos, "buyer_id = ?", buyerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteForBuyer removes the buyer's rows for the given product ids only.
func (r *GormCartRepository) DeleteForBuyer(ctx context.Context, buyerID kernel.UUID, productIDs []kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id IN ?", buyerID.Bytes(), raw).
		Delete(&CartItemDTO{}).Error
}
