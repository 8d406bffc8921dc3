// Package auth models the acting party of a mutating operation: who they are,
// what role they carry, and the Forbidden failure signaled when role or
// ownership checks reject them. Identity and role assignment themselves are
// external collaborators; this package only represents their resolved result.
package auth

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the resolved identity and role of the party attempting an operation.
// It is a value object: immutable, safe to copy and pass by value.
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an actor from a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// SystemActor returns the internal engine actor used for system-driven
// transitions such as payment confirmation and delivery propagation.
func SystemActor() Actor {
	return Actor{
		id:    kernel.NewUUID(),
		role:  RoleSystem,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
