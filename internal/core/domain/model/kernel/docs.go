// Package kernel provides core domain primitives shared by the marketplace domain model.
// It implements fundamental building blocks following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point monetary value object free of floating-point drift
//   - OrderNumber: A human-displayable, globally unique order token
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
