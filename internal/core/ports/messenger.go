package ports

import (
	"context"

	"orderbot/internal/core/domain/model/outbound"
)

// Messenger delivers outbound messages to chats. Failures are reported as
// errs.TransportError.
type Messenger interface {
	SendText(ctx context.Context, msg outbound.Text) error
	SendPhoto(ctx context.Context, msg outbound.Photo) error
	SendLocation(ctx context.Context, msg outbound.Pin) error
	DeleteMessage(ctx context.Context, msg outbound.Delete) error
	SendInvoice(ctx context.Context, msg outbound.Invoice) error

	// AnswerPreCheckout accepts (errorMessage is empty) or rejects a payment
	// before the provider charges the customer.
	AnswerPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage string) error
}
