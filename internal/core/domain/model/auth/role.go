package auth

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role classifies an acting party for authorization decisions.
// Roles are assigned by the external identity collaborator; the engine only
// consumes them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleBuyer places orders and may cancel their own pending orders.
	RoleBuyer

	// RoleSeller fulfills the order items belonging to their shop.
	RoleSeller

	// RoleDriver performs physical delivery of assigned shipments.
	RoleDriver

	// RoleAdmin may override any state.
	RoleAdmin

	// RoleSystem is the internal actor for engine-driven transitions,
	// such as applying a recorded payment authorization.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleBuyer:   "Buyer",
		RoleSeller:  "Seller",
		RoleDriver:  "Driver",
		RoleAdmin:   "Admin",
		RoleSystem:  "System",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleBuyer:  "Buyer",
		RoleSeller: "Seller",
		RoleDriver: "Driver",
		RoleAdmin:  "Admin",
		RoleSystem: "System",
	}
}

// RoleFromString parses the role names used on the wire ("BUYER", "SELLER",
// "DRIVER", "ADMIN"). The system role is internal and intentionally not parseable.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "BUYER":
		return RoleBuyer, nil
	case "SELLER":
		return RoleSeller, nil
	case "DRIVER":
		return RoleDriver, nil
	case "ADMIN":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", s),
		)
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
