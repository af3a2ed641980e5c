package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an Item that was not
	// created through the NewItem constructor.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemNameIsRequired is returned when an order item has no display name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is a single order line: a food item priced and named as it was at the
// moment the order was placed. The name and unit price are denormalized
// snapshots, deliberately immune to later catalog changes. Items are owned
// exclusively by their Order, created once at order placement, and never
// mutated afterwards.
type Item struct { //nolint:recvcheck //using for validation
	foodID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an order line with snapshot name and unit price.
// Quantity must be positive; the name must be non-empty because dashboards
// render it directly from the order, without a catalog lookup.
func NewItem(foodID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setFoodID(foodID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// FoodID returns the catalog identifier of the ordered food item.
func (i Item) FoodID() kernel.UUID {
	return i.foodID
}

// Name returns the display name captured at order time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}
	i.foodID = foodID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
