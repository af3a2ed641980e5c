package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrSmartAssignCommandIsNotConstructed = errors.New(
	"SmartAssignCommand must be created via NewSmartAssignCommand constructor",
)

// SmartAssignCommand represents assigning an order to whichever courier the
// dispatcher picks from the currently available pool.
type SmartAssignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSmartAssignCommand creates a command to auto-assign a courier to an order.
func NewSmartAssignCommand(orderID kernel.UUID) (SmartAssignCommand, error) {
	command := SmartAssignCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return SmartAssignCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SmartAssignCommand) Validate() error {
	return c.guard.Validate(ErrSmartAssignCommandIsNotConstructed)
}

// OrderID returns the order awaiting a courier.
func (c SmartAssignCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *SmartAssignCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
