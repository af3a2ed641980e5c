package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrMarkPreparingCommandIsNotConstructed = errors.New(
	"MarkPreparingCommand must be created via NewMarkPreparingCommand constructor",
)

// MarkPreparingCommand represents the kitchen starting to prepare a confirmed order.
type MarkPreparingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPreparingCommand creates a command to start preparing an order.
func NewMarkPreparingCommand(orderID kernel.UUID) (MarkPreparingCommand, error) {
	command := MarkPreparingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkPreparingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPreparingCommand) Validate() error {
	return c.guard.Validate(ErrMarkPreparingCommandIsNotConstructed)
}

// OrderID returns the order to start preparing.
func (c MarkPreparingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkPreparingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
