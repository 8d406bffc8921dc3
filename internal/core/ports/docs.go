// Package ports defines the persistence contracts of the marketplace core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports
