package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrAddFoodItemCommandIsNotConstructed = errors.New(
	"AddFoodItemCommand must be created via NewAddFoodItemCommand constructor",
)

// AddFoodItemCommand represents registering a catalog entry for a restaurant.
// New entries start available for ordering.
type AddFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddFoodItemCommand creates a command to register a catalog entry.
func NewAddFoodItemCommand(
	foodID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price kernel.Money,
) (AddFoodItemCommand, error) {
	command := AddFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFoodID(foodID),
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return AddFoodItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodItemCommandIsNotConstructed)
}

// FoodID returns the identifier for the new catalog entry.
func (c AddFoodItemCommand) FoodID() kernel.UUID {
	return c.foodID
}

// RestaurantID returns the owning restaurant.
func (c AddFoodItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the catalog entry's display name.
func (c AddFoodItemCommand) Name() string {
	return c.name
}

// Price returns the catalog entry's current price.
func (c AddFoodItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddFoodItemCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddFoodItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddFoodItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddFoodItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
