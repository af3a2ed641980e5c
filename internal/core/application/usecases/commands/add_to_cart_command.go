package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddToCartCommand represents a customer putting a food item into their cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	foodID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a food item to a customer's cart.
func NewAddToCartCommand(customerID kernel.UUID, foodID kernel.UUID, quantity int) (AddToCartCommand, error) {
	command := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setFoodID(foodID),
		command.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FoodID returns the catalog entry being added.
func (c AddToCartCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Quantity returns how many units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
