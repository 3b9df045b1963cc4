package order

import (
	"errors"

	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

// Domain errors for order item construction.
var (
	// ErrItemNameIsRequired is returned when creating an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemQuantityIsInvalid is returned for a non-positive quantity.
	ErrItemQuantityIsInvalid = errs.NewValueIsInvalidError("item quantity")
	// ErrItemPriceIsInvalid is returned for a negative unit price.
	ErrItemPriceIsInvalid = errs.NewValueIsInvalidError("item price")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is an immutable value object describing one line of an order:
// a dish name, a positive quantity, and a non-negative unit price in the
// platform currency's smallest unit.
type Item struct { //nolint:recvcheck //using for validation
	name     string
	quantity int
	price    int64

	guard guard.ConstructorGuard
}

// NewItem creates an order line item. The name must be non-empty, quantity
// positive and unit price non-negative. Validation errors are aggregated.
func NewItem(name string, quantity int, price int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks if the Item was properly constructed via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the dish name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() int64 {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() int64 {
	return i.price * int64(i.quantity)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrItemQuantityIsInvalid
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return ErrItemPriceIsInvalid
	}
	i.price = price
	return nil
}
