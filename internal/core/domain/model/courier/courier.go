package courier

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without contact info.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery person in the system.
// It is an aggregate root that manages courier identity and availability.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and contact phone
//   - A courier is Busy exactly while bound to one active order; at most one
//     active assignment exists per courier at a time
//   - Assignment is only legal while Available; release returns the courier
//     to Available
//
// The availability transitions here express the domain rule; the exclusivity
// of concurrent assignments is enforced by the persistence layer's
// compare-and-set on the availability column.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact number shown on dashboards
	phone string
	// status is the courier's current availability
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in Available status.
// This is the only way to create a fresh Courier instance; all parameters are
// validated and errors are aggregated.
func NewCourier(id kernel.UUID, name string, phone string) (*Courier, error) {
	c := &Courier{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving the availability state at the time of persistence.
func RestoreCourier(id kernel.UUID, name string, phone string, status Status) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// Status returns the courier's current availability.
func (c *Courier) Status() Status {
	return c.status
}

// IsAvailable reports whether the courier can take a new assignment.
func (c *Courier) IsAvailable() bool {
	return c.status == Available
}

// Assign marks the courier Busy for a new delivery.
// Returns a CourierUnavailableError if the courier is not Available.
func (c *Courier) Assign() error {
	if c.status != Available {
		return errs.NewCourierUnavailableErrorWithCause(
			c.id.String(), fmt.Errorf("courier is %s", c.status))
	}
	c.status = Busy
	return nil
}

// Release marks the courier Available again.
// Called when the courier's order reaches a terminal status or when an
// assignment is rolled back.
func (c *Courier) Release() {
	c.status = Available
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
