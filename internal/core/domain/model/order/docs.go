// Package order provides the Order aggregate for the marketplace: a single
// buyer checkout, possibly spanning multiple sellers, with per-seller line
// items and a role-gated lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root, created once at checkout and mutated only
//     through status transitions
//   - Item: one seller's immutable line item, carrying the seller and unit
//     price captured at order time
//   - Status: a closed enum whose transition table, including which roles may
//     trigger each edge, lives in one place (status.go)
//   - Totals: the order's immutable monetary breakdown
package order
