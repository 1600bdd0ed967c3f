package commands

import (
	"context"

	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/ports"
)

// PaymentAcknowledger builds the thank-you message.
type PaymentAcknowledger interface {
	OnPaymentSuccess(chatID string) outbound.Text
}

// CompletePaymentCommandHandler thanks the customer after a successful
// payment. The session state is left as is.
type CompletePaymentCommandHandler struct {
	acknowledger PaymentAcknowledger
	messenger    ports.Messenger
}

// NewCompletePaymentCommandHandler creates the handler.
func NewCompletePaymentCommandHandler(acknowledger PaymentAcknowledger, messenger ports.Messenger) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{acknowledger: acknowledger, messenger: messenger}
}

// Handle sends the acknowledgment.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.messenger.SendText(ctx, h.acknowledger.OnPaymentSuccess(cmd.ChatID()))
}
