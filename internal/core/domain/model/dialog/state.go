package dialog

import (
	"errors"
	"fmt"

	"orderbot/internal/pkg/errs"
)

// State is the step of the purchase flow a chat is currently in.
// It is a closed set; the zero value Unknown is never persisted.
//
// Transitions (besides re-displaying the current state and going back to MENU,
// which are allowed from every state):
//
//	START ──> MENU ──> ITEM_DETAIL ──> CART ──> CHECKOUT_LOCATION
//	           │                        ▲  │            │
//	           └────────────────────────┘  └─> CART     ▼
//	                              CHECKOUT_PAYMENT <──> CHECKOUT_CONFIRM
type State int

const (
	// Unknown represents an invalid or undefined state.
	Unknown State = iota

	// Start is entered for a fresh session or on an explicit restart.
	Start

	// Menu shows the product list.
	Menu

	// ItemDetail shows a single product card.
	ItemDetail

	// Cart shows the cart summary with remove buttons.
	Cart

	// CheckoutLocation waits for an address or shared coordinates.
	CheckoutLocation

	// CheckoutConfirm waits for the delivery or pickup choice.
	CheckoutConfirm

	// CheckoutPayment waits for the payment method choice.
	CheckoutPayment
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:          "UNKNOWN",
		Start:            "START",
		Menu:             "MENU",
		ItemDetail:       "ITEM_DETAIL",
		Cart:             "CART",
		CheckoutLocation: "CHECKOUT_LOCATION",
		CheckoutConfirm:  "CHECKOUT_CONFIRM",
		CheckoutPayment:  "CHECKOUT_PAYMENT",
	}
}

// getAllowedTransitions lists, for every valid state, the states a handler may
// move to. Menu is reachable from everywhere through goto_menu and restart.
func getAllowedTransitions() map[State][]State {
	return map[State][]State{
		Start:            {Menu},
		Menu:             {Menu, ItemDetail, Cart},
		ItemDetail:       {ItemDetail, Menu, Cart},
		Cart:             {Cart, Menu, CheckoutLocation},
		CheckoutLocation: {CheckoutLocation, CheckoutConfirm, Menu},
		CheckoutConfirm:  {CheckoutConfirm, CheckoutPayment, Menu},
		CheckoutPayment:  {CheckoutPayment, CheckoutConfirm, Menu},
	}
}

// States returns every valid state in flow order.
func States() []State {
	return []State{Start, Menu, ItemDetail, Cart, CheckoutLocation, CheckoutConfirm, CheckoutPayment}
}

// Validate checks that the state is one of the known steps.
func (s State) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the persisted name of the state, e.g. "CHECKOUT_LOCATION".
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseState is the inverse of String for valid states.
func ParseState(name string) (State, error) {
	for _, s := range States() {
		if s.String() == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%q is not a valid state", name))
}

// CanMoveTo reports whether a handler running in s may leave the chat in next.
func (s State) CanMoveTo(next State) error {
	if err := errors.Join(s.Validate(), next.Validate()); err != nil {
		return err
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"state transition is invalid",
		fmt.Errorf("%s cannot move to %s", s, next),
	)
}
