package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order with its items and applies the
// actor's visibility rules: buyers must own the order, sellers get only
// their lines (and no totals), admins see the whole thing.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order query for the given actor.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		number        string
		buyerID       uuid.UUID
		status        order.Status
		paymentMethod string
		subtotal      decimal.Decimal
		tax           decimal.Decimal
		shipping      decimal.Decimal
		total         decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, number, buyer_id, status, payment_method, subtotal, tax, shipping, total
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&id, &number, &buyerID, &status, &paymentMethod, &subtotal, &tax, &shipping, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderBuyerID, err := kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:            orderID,
		Number:        number,
		BuyerID:       orderBuyerID,
		Status:        status.String(),
		PaymentMethod: paymentMethod,
		Subtotal:      subtotal.StringFixed(2),
		Tax:           tax.StringFixed(2),
		Shipping:      shipping.StringFixed(2),
		Total:         total.StringFixed(2),
		Items:         items,
	}

	return h.scopeToActor(response, query.Actor())
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, seller_id, quantity, unit_price_at_time, line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			sellerID  uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
			lineTotal decimal.Decimal
		)

		if err = rows.Scan(&productID, &sellerID, &quantity, &unitPrice, &lineTotal); err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemSellerID, idErr := kernel.UUIDFromBytes(sellerID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			ProductID:       itemProductID,
			SellerID:        itemSellerID,
			Quantity:        quantity,
			UnitPriceAtTime: unitPrice.StringFixed(2),
			LineTotal:       lineTotal.StringFixed(2),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) scopeToActor(
	response GetOrderQueryResponse,
	actor auth.Actor,
) (GetOrderQueryResponse, error) {
	switch actor.Role() {
	case auth.RoleAdmin, auth.RoleSystem:
		return response, nil

	case auth.RoleBuyer:
		if response.BuyerID.IsEqual(actor.ID()) {
			return response, nil
		}

	case auth.RoleSeller:
		var own []OrderItemResponse
		for _, item := range response.Items {
			if item.SellerID.IsEqual(actor.ID()) {
				own = append(own, item)
			}
		}
		if len(own) > 0 {
			response.Items = own
			response.BuyerID = kernel.UUID{}
			response.Subtotal = ""
			response.Tax = ""
			response.Shipping = ""
			response.Total = ""
			return response, nil
		}
	}

	return GetOrderQueryResponse{}, auth.NewForbiddenError(actor.Role(), "view this order")
}
