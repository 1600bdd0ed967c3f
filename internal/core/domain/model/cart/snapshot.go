// Package cart models the backend cart as the bot sees it after every read.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"orderbot/internal/pkg/errs"
)

// LineItem is one product position of a cart.
type LineItem struct {
	id        string
	productID string
	name      string
	quantity  int
	unitPrice int64
}

// NewLineItem validates a line item read from the backend.
func NewLineItem(id, productID, name string, quantity int, unitPrice int64) (LineItem, error) {
	var errID, errName, errQty, errPrice error
	if strings.TrimSpace(id) == "" {
		errID = errs.NewValueIsRequiredError("line item id")
	}
	if strings.TrimSpace(name) == "" {
		errName = errs.NewValueIsRequiredError("line item name")
	}
	if quantity <= 0 {
		errQty = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		errPrice = errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%d is negative", unitPrice))
	}
	if err := errors.Join(errID, errName, errQty, errPrice); err != nil {
		return LineItem{}, err
	}

	return LineItem{id: id, productID: productID, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l LineItem) ID() string        { return l.id }
func (l LineItem) ProductID() string { return l.productID }
func (l LineItem) Name() string      { return l.name }
func (l LineItem) Quantity() int     { return l.quantity }
func (l LineItem) UnitPrice() int64  { return l.unitPrice }

// String renders "<name>: <quantity> × <unit_price>".
func (l LineItem) String() string {
	return fmt.Sprintf("%s: %d × %d", l.name, l.quantity, l.unitPrice)
}

// Snapshot is the cart content at the moment it was read. Total is taken
// from the backend and not recomputed, since the backend applies taxes.
type Snapshot struct {
	cartID string
	items  []LineItem
	total  int64
}

// NewSnapshot builds a snapshot, keeping the backend order of the items.
func NewSnapshot(cartID string, items []LineItem, total int64) (Snapshot, error) {
	if strings.TrimSpace(cartID) == "" {
		return Snapshot{}, errs.NewValueIsRequiredError("cart id")
	}
	if total < 0 {
		return Snapshot{}, errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%d is negative", total))
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)
	return Snapshot{cartID: cartID, items: copied, total: total}, nil
}

func (s Snapshot) CartID() string {
	return s.cartID
}

// Items returns a copy of the line items.
func (s Snapshot) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s Snapshot) Total() int64 {
	return s.total
}

func (s Snapshot) IsEmpty() bool {
	return len(s.items) == 0
}

// CanCheckout reports whether the checkout button may be offered.
func (s Snapshot) CanCheckout() bool {
	return s.total > 0
}

// Contains reports whether a line item with the id is in the cart.
func (s Snapshot) Contains(lineItemID string) bool {
	for _, item := range s.items {
		if item.id == lineItemID {
			return true
		}
	}
	return false
}

// Quantity returns how many units of the product are in the cart.
func (s Snapshot) Quantity(productID string) int {
	qty := 0
	for _, item := range s.items {
		if item.productID == productID {
			qty += item.quantity
		}
	}
	return qty
}

// Lines renders one line per item.
func (s Snapshot) Lines() []string {
	lines := make([]string, 0, len(s.items))
	for _, item := range s.items {
		lines = append(lines, item.String())
	}
	return lines
}

// Summary renders the items followed by the total.
func (s Snapshot) Summary() string {
	if s.IsEmpty() {
		return "Your cart is empty."
	}
	return fmt.Sprintf("%s\n\nTotal: %d", strings.Join(s.Lines(), "\n"), s.total)
}
