package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

// GetPendingDeliveriesQueryHandler lists deliveries still waiting for a
// driver, joined with their order numbers for display.
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for dispatch queries.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Only PENDING deliveries without a driver
// qualify; FAILED ones keep their driver and are retried, not re-dispatched.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, d.order_id, o.number
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.status = ? AND d.driver_id IS NULL
		ORDER BY o.number
	`, delivery.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetPendingDeliveriesQueryResponse, 0)

	for rows.Next() {
		var (
			id      uuid.UUID
			orderID uuid.UUID
			number  string
		)

		if err = rows.Scan(&id, &orderID, &number); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetPendingDeliveriesQueryResponse{
			ID:          deliveryID,
			OrderID:     deliveryOrderID,
			OrderNumber: number,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
