package ordering

import (
	"fmt"

	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/outbound"
)

var (
	menuButton     = outbound.Button{Text: "Menu", Token: dialog.GotoMenu}
	cartButton     = outbound.Button{Text: "Your cart", Token: dialog.GotoCart}
	checkoutButton = outbound.Button{Text: "Checkout", Token: dialog.GotoCheckout}
	deliveryButton = outbound.Button{Text: "Delivery", Token: dialog.GotoDelivery}
	pickupButton   = outbound.Button{Text: "Pickup", Token: dialog.GotoPickup}
	cardButton     = outbound.Button{Text: "By card", Token: dialog.GotoPayCard}
	cashButton     = outbound.Button{Text: "In cash", Token: dialog.GotoPayCash}
)

// MenuView lists every product as a button followed by the cart button.
func MenuView(chatID string, products []catalog.Product) outbound.Text {
	kb := outbound.Keyboard{}
	for _, p := range products {
		kb = kb.Row(outbound.Button{Text: p.Name(), Token: p.ID()})
	}

	return outbound.Text{
		ChatID:   chatID,
		Body:     "Welcome to the pizza bot!\nHere are our pizzas:",
		Keyboard: kb.Row(cartButton),
	}
}

// ProductView shows a product card. Tapping "Order" sends the product id back.
func ProductView(chatID string, product catalog.Product) outbound.Message {
	kb := outbound.Keyboard{}.
		Row(outbound.Button{Text: "Order", Token: product.ID()}).
		Row(menuButton).
		Row(cartButton)

	if product.ImageURL() == "" {
		return outbound.Text{ChatID: chatID, Body: product.Card(), Keyboard: kb}
	}
	return outbound.Photo{ChatID: chatID, URL: product.ImageURL(), Caption: product.Card(), Keyboard: kb}
}

// CartView shows the cart with a remove button per line item. The checkout
// button is only offered when the total is positive.
func CartView(chatID string, snapshot cart.Snapshot) outbound.Text {
	kb := outbound.Keyboard{}
	for _, item := range snapshot.Items() {
		kb = kb.Row(outbound.Button{Text: "Remove " + item.Name(), Token: item.ID()})
	}
	kb = kb.Row(menuButton)
	if snapshot.CanCheckout() {
		kb = kb.Row(checkoutButton)
	}

	return outbound.Text{
		ChatID:   chatID,
		Body:     "YOUR CART:\n" + snapshot.Summary(),
		Keyboard: kb,
	}
}

// LocationPrompt asks for an address or shared coordinates.
func LocationPrompt(chatID string) outbound.Text {
	return outbound.Text{
		ChatID:   chatID,
		Body:     "CHECKOUT:\nTo deliver your pizza, send us your location or type the address.",
		Keyboard: outbound.Keyboard{}.Row(menuButton),
	}
}

// DecisionView tells the customer the outcome of resolving their location.
// Delivery and pickup are offered only for accepted decisions.
func DecisionView(chatID string, decision fulfillment.Decision) outbound.Text {
	msg := outbound.Text{ChatID: chatID, Body: decision.Prompt()}
	if decision.IsResolved() {
		msg.Keyboard = outbound.Keyboard{}.Row(deliveryButton).Row(pickupButton)
	}
	return msg
}

// PaymentPrompt asks how the customer is going to pay.
func PaymentPrompt(chatID, body string) outbound.Text {
	return outbound.Text{
		ChatID:   chatID,
		Body:     body,
		Keyboard: outbound.Keyboard{}.Row(cardButton).Row(cashButton),
	}
}

// Apology is the single message sent when an event could not be processed.
func Apology(chatID string) outbound.Text {
	return outbound.Text{
		ChatID:   chatID,
		Body:     "Sorry, something went wrong. Please try again a bit later.",
		Keyboard: outbound.Keyboard{}.Row(menuButton),
	}
}

// OrderSummary renders cart lines and the total.
func OrderSummary(snapshot cart.Snapshot) string {
	return snapshot.Summary()
}

func courierOrderText(snapshot cart.Snapshot, decision fulfillment.Decision) string {
	body := fmt.Sprintf("Order:\n%s\nDelivery fee: %d", OrderSummary(snapshot), decision.Tier().DeliveryFee())
	if address := decision.CustomerAddress(); address != "" {
		body += "\nAddress: " + address
	}
	return body
}
