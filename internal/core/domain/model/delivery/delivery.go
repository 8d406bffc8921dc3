package delivery

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"call NewDelivery or RestoreDelivery constructor",
)

// ErrDriverIsNotAssigned is returned when a transition requires an assigned
// driver but none is set.
var ErrDriverIsNotAssigned = errors.New("delivery has no assigned driver")

// Delivery is the aggregate tracking physical fulfillment of one order.
// Exactly one delivery exists per shipped order.
type Delivery struct {
	id       kernel.UUID
	orderID  kernel.UUID
	driverID *kernel.UUID
	status   Status
	version  int

	isConstructed bool
}

// NewDelivery creates a delivery for an order entering fulfillment.
// It starts in StatusPending with no driver assigned.
func NewDelivery(orderID kernel.UUID) (*Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return &Delivery{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence without
// replaying transitions.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	version int,
) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("driverID", err)
		}
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is less than 1", version),
		)
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		driverID:      driverID,
		status:        status,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate checks that the delivery was created via a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the assigned driver, or nil when unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	if d.driverID == nil {
		return nil
	}
	id := *d.driverID
	return &id
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Version() int {
	return d.version
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return d.id.IsEqual(other.id)
}

// IsAssignedTo reports whether the given driver owns this delivery.
func (d *Delivery) IsAssignedTo(driverID kernel.UUID) bool {
	return d.driverID != nil && d.driverID.IsEqual(driverID)
}

// AssignDriver sets or replaces the assigned driver. Reassignment is allowed
// while the package is not moving: Pending, PendingPickup and Failed.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	switch d.status {
	case StatusPending, StatusPendingPickup, StatusFailed:
	default:
		return NewIllegalTransitionError(d.status, StatusPendingPickup)
	}

	d.driverID = &driverID
	return nil
}

// TransitionTo moves the delivery to the target status on behalf of the
// given role. A driver must be assigned before the package can enter
// PendingPickup or any later status.
func (d *Delivery) TransitionTo(target Status, role auth.Role) error {
	if err := d.Validate(); err != nil {
		return err
	}

	next, err := d.status.Transition(target, role)
	if err != nil {
		return err
	}

	if next != StatusPending && d.driverID == nil {
		return fmt.Errorf("%w: cannot enter %s", ErrDriverIsNotAssigned, next)
	}

	d.status = next
	return nil
}
