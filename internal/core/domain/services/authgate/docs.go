// Package authgate decides whether an actor owns a stake in an order or
// delivery before any state change is attempted.
package authgate
