// Package pricing computes order totals deterministically from line items.
package pricing
