package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// GetOrdersForSellerQueryHandler reads a seller's order projection straight
// from SQL. One join pulls only the rows the seller owns; the grouping into
// orders happens in memory.
type GetOrdersForSellerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForSellerQueryHandler creates a handler for seller order queries.
func NewGetOrdersForSellerQueryHandler(db *gorm.DB) GetOrdersForSellerQueryHandler {
	return GetOrdersForSellerQueryHandler{db: db}
}

// Handle executes the seller order query. Orders are returned newest number
// first; each carries only the querying seller's items.
func (h GetOrdersForSellerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForSellerQuery,
) ([]GetOrdersForSellerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.status,
			i.product_id,
			i.quantity,
			i.unit_price_at_time,
			i.line_total
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.seller_id = ?
		ORDER BY o.number DESC, i.id
	`, query.SellerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetOrdersForSellerQueryResponse, 0)
	indexByOrder := make(map[string]int)

	for rows.Next() {
		var (
			id        uuid.UUID
			number    string
			status    order.Status
			productID uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
			lineTotal decimal.Decimal
		)

		if err = rows.Scan(&id, &number, &status, &productID, &quantity, &unitPrice, &lineTotal); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		idx, ok := indexByOrder[number]
		if !ok {
			responses = append(responses, GetOrdersForSellerQueryResponse{
				ID:     orderID,
				Number: number,
				Status: status.String(),
			})
			idx = len(responses) - 1
			indexByOrder[number] = idx
		}

		responses[idx].Items = append(responses[idx].Items, SellerOrderItemResponse{
			ProductID:       itemProductID,
			Quantity:        quantity,
			UnitPriceAtTime: unitPrice.StringFixed(2),
			LineTotal:       lineTotal.StringFixed(2),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
