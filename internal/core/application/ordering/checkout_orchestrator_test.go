package ordering_test

import (
	"testing"
	"time"

	"orderbot/internal/core/application/ordering"
	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/domain/model/payment"
	"orderbot/internal/core/domain/model/reminder"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newOrchestrator(t *testing.T) *ordering.CheckoutOrchestrator {
	t.Helper()
	o, err := ordering.NewCheckoutOrchestrator(ordering.CheckoutSettings{
		InvoicePayload: "pizza-payload",
		Currency:       "RUB",
		ReminderDelay:  time.Hour,
	}, func() time.Time { return fixedNow })
	require.NoError(t, err)
	return o
}

func snapshotWithTotal(t *testing.T, total int64) cart.Snapshot {
	t.Helper()
	var items []cart.LineItem
	if total > 0 {
		item, err := cart.NewLineItem("li-1", "p-1", "Pepperoni", 1, total)
		require.NoError(t, err)
		items = append(items, item)
	}
	s, err := cart.NewSnapshot("42", items, total)
	require.NoError(t, err)
	return s
}

func acceptedDecision(t *testing.T, km float64) fulfillment.Decision {
	t.Helper()
	d, err := fulfillment.NewDecision(
		mustLocation(t, customerLat, customerLon),
		mustPoint(t, "p", latOffsetKm(km), customerLon),
		km,
	)
	require.NoError(t, err)
	return d.WithRecord("rec-1", "Lenina 1")
}

func TestNewCheckoutOrchestrator(t *testing.T) {
	_, err := ordering.NewCheckoutOrchestrator(ordering.CheckoutSettings{}, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "invoice payload")
}

func TestCheckoutOrchestrator_ConfirmFulfillment(t *testing.T) {
	t.Run("should notify the courier and schedule a reminder on delivery", func(t *testing.T) {
		o := newOrchestrator(t)
		d := acceptedDecision(t, 8)

		out, err := o.ConfirmFulfillment("42", fulfillment.Delivery, d, snapshotWithTotal(t, 650))

		require.NoError(t, err)
		require.Len(t, out.Messages, 3)

		pin, ok := out.Messages[0].(outbound.Pin)
		require.True(t, ok)
		assert.Equal(t, "courier-p", pin.ChatID)
		assert.InDelta(t, customerLat, pin.Location.Latitude(), 1e-9)

		order, ok := out.Messages[1].(outbound.Text)
		require.True(t, ok)
		assert.Equal(t, "courier-p", order.ChatID)
		assert.Contains(t, order.Body, "Pepperoni: 1 × 650")
		assert.Contains(t, order.Body, "Delivery fee: 300")
		assert.Contains(t, order.Body, "Address: Lenina 1")

		prompt, ok := out.Messages[2].(outbound.Text)
		require.True(t, ok)
		assert.Equal(t, "42", prompt.ChatID)
		assert.True(t, prompt.Keyboard.Has(dialog.GotoPayCard))
		assert.True(t, prompt.Keyboard.Has(dialog.GotoPayCash))

		require.Len(t, out.Reminders, 1)
		assert.Equal(t, "42", out.Reminders[0].ChatID())
		assert.Equal(t, fixedNow.Add(time.Hour), out.Reminders[0].DueAt())
		assert.Equal(t, reminder.Pending, out.Reminders[0].Status())
	})

	t.Run("should only prompt with the point address on pickup", func(t *testing.T) {
		o := newOrchestrator(t)

		out, err := o.ConfirmFulfillment("42", fulfillment.Pickup, acceptedDecision(t, 0.3), snapshotWithTotal(t, 650))

		require.NoError(t, err)
		require.Len(t, out.Messages, 1)
		assert.Empty(t, out.Reminders)
		prompt := out.Messages[0].(outbound.Text)
		assert.Contains(t, prompt.Body, "Address p")
		assert.True(t, prompt.Keyboard.Has(dialog.GotoPayCard))
	})

	t.Run("should refuse unresolved decisions and unknown modes", func(t *testing.T) {
		o := newOrchestrator(t)

		_, err := o.ConfirmFulfillment("42", fulfillment.Delivery, fulfillment.NewUnknownLocationDecision(), snapshotWithTotal(t, 650))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = o.ConfirmFulfillment("42", fulfillment.UnknownMode, acceptedDecision(t, 1), snapshotWithTotal(t, 650))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCheckoutOrchestrator_FinalizePayment(t *testing.T) {
	t.Run("should confirm cash orders with the summary", func(t *testing.T) {
		msgs, err := newOrchestrator(t).FinalizePayment("42", payment.Cash, snapshotWithTotal(t, 650))

		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0].(outbound.Text).Body, "Total: 650")
	})

	t.Run("should issue an invoice in minor units for card", func(t *testing.T) {
		msgs, err := newOrchestrator(t).FinalizePayment("42", payment.Card, snapshotWithTotal(t, 650))

		require.NoError(t, err)
		require.Len(t, msgs, 1)
		inv, ok := msgs[0].(outbound.Invoice)
		require.True(t, ok)
		assert.Equal(t, int64(65000), inv.Amount)
		assert.Equal(t, "pizza-payload", inv.Payload)
		assert.Equal(t, "RUB", inv.Currency)
		assert.Equal(t, "Order payment", inv.Title)
		assert.Contains(t, inv.Description, "Pepperoni")
	})

	t.Run("should not invoice an empty cart", func(t *testing.T) {
		msgs, err := newOrchestrator(t).FinalizePayment("42", payment.Card, snapshotWithTotal(t, 0))

		require.NoError(t, err)
		require.Len(t, msgs, 1)
		_, isInvoice := msgs[0].(outbound.Invoice)
		assert.False(t, isInvoice)
	})

	t.Run("should reject unknown methods", func(t *testing.T) {
		_, err := newOrchestrator(t).FinalizePayment("42", payment.UnknownMethod, snapshotWithTotal(t, 650))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCheckoutOrchestrator_VerifyPreCheckout(t *testing.T) {
	o := newOrchestrator(t)

	require.NoError(t, o.VerifyPreCheckout("pizza-payload"))

	err := o.VerifyPreCheckout("forged")
	require.ErrorIs(t, err, errs.ErrPaymentValidation)
	assert.Contains(t, err.Error(), "forged")
}

func TestCheckoutOrchestrator_OnPaymentSuccess(t *testing.T) {
	msg := newOrchestrator(t).OnPaymentSuccess("42")

	assert.Equal(t, "42", msg.ChatID)
	assert.Equal(t, "Thank you for your order!", msg.Body)
}

func tooFarDecision(t *testing.T) fulfillment.Decision {
	t.Helper()
	d, err := fulfillment.NewDecision(
		mustLocation(t, customerLat, customerLon),
		mustPoint(t, "p", latOffsetKm(25), customerLon),
		25,
	)
	require.NoError(t, err)
	return d
}
