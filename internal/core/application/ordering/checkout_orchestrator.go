package ordering

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/domain/model/payment"
	"orderbot/internal/core/domain/model/reminder"
	"orderbot/internal/pkg/errs"
)

// CheckoutSettings are fixed at startup.
type CheckoutSettings struct {
	// InvoicePayload correlates invoices with this bot and is checked at pre-checkout.
	InvoicePayload string
	Currency       string
	InvoiceTitle   string
	InvoiceLabel   string
	ReminderDelay  time.Duration
	ReminderText   string
}

func (s CheckoutSettings) validate() error {
	var errPayload, errCurrency, errDelay error
	if strings.TrimSpace(s.InvoicePayload) == "" {
		errPayload = errs.NewValueIsRequiredError("invoice payload")
	}
	if strings.TrimSpace(s.Currency) == "" {
		errCurrency = errs.NewValueIsRequiredError("currency")
	}
	if s.ReminderDelay <= 0 {
		errDelay = errs.NewValueIsInvalidErrorWithCause("reminder delay is invalid", fmt.Errorf("%s is not positive", s.ReminderDelay))
	}
	return errors.Join(errPayload, errCurrency, errDelay)
}

// Outcome is what a checkout step produces: messages to send and reminders
// to persist together with the session.
type Outcome struct {
	Messages  []outbound.Message
	Reminders []*reminder.Reminder
}

// CheckoutOrchestrator reconciles the fulfillment mode with the payment
// method. It performs no I/O; the caller sends and persists its Outcome.
type CheckoutOrchestrator struct {
	settings CheckoutSettings
	now      func() time.Time
}

// NewCheckoutOrchestrator validates the settings. now defaults to time.Now.
func NewCheckoutOrchestrator(settings CheckoutSettings, now func() time.Time) (*CheckoutOrchestrator, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}
	if settings.InvoiceTitle == "" {
		settings.InvoiceTitle = "Order payment"
	}
	if settings.InvoiceLabel == "" {
		settings.InvoiceLabel = "Order"
	}
	if settings.ReminderText == "" {
		settings.ReminderText = "Enjoy your meal! If the pizza has not arrived yet, please contact us."
	}
	if now == nil {
		now = time.Now
	}
	return &CheckoutOrchestrator{settings: settings, now: now}, nil
}

// ConfirmFulfillment handles the delivery or pickup choice.
//
// Delivery: the courier of the nearest point gets the customer's location and
// the order summary, a reminder is scheduled for the customer, and the
// customer is asked how they will pay.
// Pickup: the customer gets the point address and the payment question.
func (o *CheckoutOrchestrator) ConfirmFulfillment(
	chatID string,
	mode fulfillment.Mode,
	decision fulfillment.Decision,
	snapshot cart.Snapshot,
) (Outcome, error) {
	if !decision.IsResolved() {
		return Outcome{}, errs.NewValueIsInvalidErrorWithCause(
			"decision is invalid",
			fmt.Errorf("%s is not an accepted tier", decision.Tier()),
		)
	}

	switch mode {
	case fulfillment.Delivery:
		courier := decision.Point().CourierContact()
		r, err := reminder.NewReminder(kernel.NewUUID(), chatID, o.settings.ReminderText, o.now().Add(o.settings.ReminderDelay))
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{
			Messages: []outbound.Message{
				outbound.Pin{ChatID: courier, Location: decision.Customer()},
				outbound.Text{ChatID: courier, Body: courierOrderText(snapshot, decision)},
				PaymentPrompt(chatID, "Your order has been accepted and will be delivered soon! How will you pay?"),
			},
			Reminders: []*reminder.Reminder{r},
		}, nil

	case fulfillment.Pickup:
		return Outcome{
			Messages: []outbound.Message{
				PaymentPrompt(chatID, fmt.Sprintf(
					"Great! We are waiting for you at %s. How will you pay?",
					decision.Point().Address(),
				)),
			},
		}, nil

	default:
		return Outcome{}, errs.NewValueIsInvalidErrorWithCause("mode is invalid", fmt.Errorf("%d is not a valid mode", mode))
	}
}

// FinalizePayment handles the payment method choice: cash confirms the order
// with its summary, card issues an invoice for the cart total in minor units.
func (o *CheckoutOrchestrator) FinalizePayment(chatID string, method payment.Method, snapshot cart.Snapshot) ([]outbound.Message, error) {
	if !snapshot.CanCheckout() {
		return []outbound.Message{outbound.Text{
			ChatID:   chatID,
			Body:     "Your cart is empty.",
			Keyboard: outbound.Keyboard{}.Row(menuButton),
		}}, nil
	}

	switch method {
	case payment.Cash:
		return []outbound.Message{outbound.Text{
			ChatID: chatID,
			Body:   "Agreed! As a reminder, you ordered:\n" + OrderSummary(snapshot),
		}}, nil

	case payment.Card:
		return []outbound.Message{outbound.Invoice{
			ChatID:      chatID,
			Title:       o.settings.InvoiceTitle,
			Description: OrderSummary(snapshot),
			Payload:     o.settings.InvoicePayload,
			Currency:    o.settings.Currency,
			Label:       o.settings.InvoiceLabel,
			Amount:      payment.InvoiceAmount(snapshot.Total()),
		}}, nil

	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%d is not a valid method", method))
	}
}

// VerifyPreCheckout accepts the payload only if it equals the configured one.
func (o *CheckoutOrchestrator) VerifyPreCheckout(payload string) error {
	if payload != o.settings.InvoicePayload {
		return errs.NewPaymentValidationError(payload, "payload does not match the issued invoice")
	}
	return nil
}

// OnPaymentSuccess thanks the customer.
func (o *CheckoutOrchestrator) OnPaymentSuccess(chatID string) outbound.Text {
	return outbound.Text{ChatID: chatID, Body: "Thank you for your order!"}
}
