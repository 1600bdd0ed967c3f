package commands

import (
	"context"

	"orderbot/internal/core/application/ordering"
	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/domain/model/payment"
)

// The handlers below implement the transition table. Each returns the
// messages to send and the next state; an unrecognized trigger re-displays
// the current state's content and keeps the state.

// isItemToken reports whether a callback carries a product or line-item id.
// Button tokens never reach the backend as ids.
func isItemToken(e dialog.Event) bool {
	return e.Kind() == dialog.CallbackEvent && !dialog.IsControlToken(e.Token())
}

func (h *HandleEventCommandHandler) onStart(ctx context.Context, s *dialog.Session) (reply, error) {
	return h.showMenu(ctx, s)
}

func (h *HandleEventCommandHandler) onMenu(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	switch {
	case e.Is(dialog.GotoCart):
		return h.showCart(ctx, s)
	case isItemToken(e):
		r, err := h.showProduct(ctx, s, e.Token())
		if isUnknownID(err) {
			return h.showMenu(ctx, s)
		}
		return r, err
	default:
		return h.showMenu(ctx, s)
	}
}

func (h *HandleEventCommandHandler) onItemDetail(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	switch {
	case e.Is(dialog.GotoCart):
		return h.showCart(ctx, s)
	case isItemToken(e):
		snapshot, err := h.deps.Carts.Add(ctx, s.CartID(), e.Token())
		if isUnknownID(err) {
			return h.redisplayProduct(ctx, s)
		}
		if err != nil {
			return reply{}, err
		}
		return reply{messages: []outbound.Message{ordering.CartView(s.ChatID(), snapshot)}, next: dialog.Cart}, nil
	default:
		return h.redisplayProduct(ctx, s)
	}
}

func (h *HandleEventCommandHandler) onCart(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	switch {
	case e.Is(dialog.GotoCheckout):
		snapshot, err := h.deps.Carts.Snapshot(ctx, s.CartID())
		if err != nil {
			return reply{}, err
		}
		if !snapshot.CanCheckout() {
			return reply{messages: []outbound.Message{ordering.CartView(s.ChatID(), snapshot)}, next: dialog.Cart}, nil
		}
		return reply{messages: []outbound.Message{ordering.LocationPrompt(s.ChatID())}, next: dialog.CheckoutLocation}, nil
	case isItemToken(e):
		snapshot, err := h.deps.Carts.Remove(ctx, s.CartID(), e.Token())
		if isUnknownID(err) {
			return h.showCart(ctx, s)
		}
		if err != nil {
			return reply{}, err
		}
		return reply{messages: []outbound.Message{ordering.CartView(s.ChatID(), snapshot)}, next: dialog.Cart}, nil
	default:
		return h.showCart(ctx, s)
	}
}

func (h *HandleEventCommandHandler) onCheckoutLocation(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	var raw ordering.RawLocation
	switch e.Kind() {
	case dialog.LocationEvent:
		raw = ordering.CoordinatesInput(e.Location())
	case dialog.TextEvent:
		raw = ordering.AddressInput(e.Text())
	default:
		return reply{messages: []outbound.Message{ordering.LocationPrompt(s.ChatID())}, next: dialog.CheckoutLocation}, nil
	}

	decision, err := h.deps.Resolver.Resolve(ctx, s.ChatID(), raw)
	if err != nil {
		return reply{}, err
	}

	view := ordering.DecisionView(s.ChatID(), decision)
	if !decision.IsResolved() {
		return reply{messages: []outbound.Message{view}, next: dialog.CheckoutLocation}, nil
	}
	return reply{messages: []outbound.Message{view}, next: dialog.CheckoutConfirm, recordID: decision.RecordID()}, nil
}

func (h *HandleEventCommandHandler) onCheckoutConfirm(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	var mode fulfillment.Mode
	switch {
	case e.Is(dialog.GotoDelivery):
		mode = fulfillment.Delivery
	case e.Is(dialog.GotoPickup):
		mode = fulfillment.Pickup
	}

	decision, err := h.deps.Resolver.Reload(ctx, s.PendingRecordID())
	if err != nil {
		return reply{}, err
	}

	if mode == fulfillment.UnknownMode {
		return reply{messages: []outbound.Message{ordering.DecisionView(s.ChatID(), decision)}, next: dialog.CheckoutConfirm}, nil
	}

	snapshot, err := h.deps.Carts.Snapshot(ctx, s.CartID())
	if err != nil {
		return reply{}, err
	}

	outcome, err := h.deps.Checkout.ConfirmFulfillment(s.ChatID(), mode, decision, snapshot)
	if err != nil {
		return reply{}, err
	}

	return reply{messages: outcome.Messages, reminders: outcome.Reminders, next: dialog.CheckoutPayment}, nil
}

func (h *HandleEventCommandHandler) onCheckoutPayment(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	var method payment.Method
	switch {
	case e.Is(dialog.GotoPayCash):
		method = payment.Cash
	case e.Is(dialog.GotoPayCard):
		method = payment.Card
	default:
		return reply{
			messages: []outbound.Message{ordering.PaymentPrompt(s.ChatID(), "How will you pay?")},
			next:     dialog.CheckoutPayment,
		}, nil
	}

	snapshot, err := h.deps.Carts.Snapshot(ctx, s.CartID())
	if err != nil {
		return reply{}, err
	}

	messages, err := h.deps.Checkout.FinalizePayment(s.ChatID(), method, snapshot)
	if err != nil {
		return reply{}, err
	}

	return reply{messages: messages, next: dialog.CheckoutConfirm}, nil
}

func (h *HandleEventCommandHandler) showMenu(ctx context.Context, s *dialog.Session) (reply, error) {
	products, err := h.deps.Catalog.ListProducts(ctx)
	if err != nil {
		return reply{}, err
	}
	return reply{messages: []outbound.Message{ordering.MenuView(s.ChatID(), products)}, next: dialog.Menu}, nil
}

func (h *HandleEventCommandHandler) showCart(ctx context.Context, s *dialog.Session) (reply, error) {
	snapshot, err := h.deps.Carts.Snapshot(ctx, s.CartID())
	if err != nil {
		return reply{}, err
	}
	return reply{messages: []outbound.Message{ordering.CartView(s.ChatID(), snapshot)}, next: dialog.Cart}, nil
}

func (h *HandleEventCommandHandler) showProduct(ctx context.Context, s *dialog.Session, productID string) (reply, error) {
	product, err := h.deps.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return reply{}, err
	}
	return reply{
		messages:        []outbound.Message{ordering.ProductView(s.ChatID(), product)},
		next:            dialog.ItemDetail,
		viewedProductID: product.ID(),
	}, nil
}

// redisplayProduct shows the card on screen again, or the menu when it is
// no longer known.
func (h *HandleEventCommandHandler) redisplayProduct(ctx context.Context, s *dialog.Session) (reply, error) {
	if s.ViewedProductID() == "" {
		return h.showMenu(ctx, s)
	}
	r, err := h.showProduct(ctx, s, s.ViewedProductID())
	if isUnknownID(err) {
		return h.showMenu(ctx, s)
	}
	return r, err
}
