package commands

import (
	"context"
	"errors"
	"sort"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services/pricing"
	"marketplace/internal/core/ports"
)

// ErrCartIsEmpty is returned when a cart checkout is requested and the buyer
// has no saved cart items.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutCommandHandler places an order atomically. A single transaction
// spans the locked stock decrements, the order insert and the scoped cart
// cleanup; any failure rolls the whole attempt back, leaving stock, orders
// and cart exactly as they were.
//
// Prices are taken from the catalog snapshot read at the start of the
// transaction and stamped onto the order items, so a later price change
// never alters what this buyer pays.
type CheckoutCommandHandler struct {
	uowFactory      CheckoutUoWFactory
	calculator      pricing.Calculator
	addressVerifier ports.AddressVerifier
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	calculator pricing.Calculator,
	addressVerifier ports.AddressVerifier,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:      uowFactory,
		calculator:      calculator,
		addressVerifier: addressVerifier,
	}
}

// Handle processes the checkout command.
// Stock for every line is re-read under a row lock inside the transaction;
// concurrent checkouts competing for the last unit serialize on that lock
// and exactly one of them succeeds.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.addressVerifier.Verify(ctx, cmd.ShippingAddressID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()
	cartRepo := uow.CartRepository()

	lines := cmd.Lines()
	if len(lines) == 0 {
		cartItems, err := cartRepo.GetForBuyer(ctx, cmd.BuyerID())
		if err != nil {
			return err
		}
		lines = linesFromCart(cartItems)
	}
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	// Rows are locked in a fixed order so two overlapping checkouts cannot
	// deadlock on each other's products.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID.String() < lines[j].ProductID.String()
	})

	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	snapshots, err := productRepo.GetSnapshots(ctx, productIDs)
	if err != nil {
		return err
	}
	snapshotByID := make(map[string]product.Snapshot, len(snapshots))
	for _, snapshot := range snapshots {
		snapshotByID[snapshot.ProductID.String()] = snapshot
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		locked, err := productRepo.GetForUpdate(ctx, line.ProductID)
		if err != nil {
			return err
		}

		if err = locked.Reserve(line.Quantity); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, locked); err != nil {
			return err
		}

		snapshot := snapshotByID[line.ProductID.String()]
		item, err := order.NewItem(
			kernel.NewUUID(),
			line.ProductID,
			snapshot.SellerID,
			line.Quantity,
			snapshot.Price,
		)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	totals, err := h.calculator.Quote(items)
	if err != nil {
		return err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		kernel.NewOrderNumber(),
		cmd.BuyerID(),
		cmd.ShippingAddressID(),
		cmd.BillingAddressID(),
		cmd.PaymentMethod(),
		items,
		totals,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return err
	}

	// Only the rows for the checked-out products go; lines the buyer added
	// mid-checkout survive.
	if err = cartRepo.DeleteForBuyer(ctx, cmd.BuyerID(), placed.ProductIDs()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func linesFromCart(items []*cart.CartItem) []CheckoutLine {
	lines := make([]CheckoutLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CheckoutLine{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}
	return lines
}
