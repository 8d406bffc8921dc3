// Package delivery contains the delivery aggregate: the authoritative
// sub-state machine for physical fulfillment of a shipped order.
//
// A delivery is created when its order enters fulfillment and progresses
// Pending -> PendingPickup -> OutForDelivery -> Delivered, with Failed as a
// retryable detour. Order status never drives delivery state; the dependency
// runs the other way, with the terminal Delivered transition propagated back
// to the order by the application layer.
package delivery
