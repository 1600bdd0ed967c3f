package commands

import (
	"context"
	"log/slog"

	"orderbot/internal/core/ports"
)

// PreCheckoutRejectionMessage is shown by the messenger when a payment is declined.
const PreCheckoutRejectionMessage = "Something went wrong with this invoice. Please place the order again."

// PreCheckoutVerifier decides whether an invoice payload was issued by this bot.
type PreCheckoutVerifier interface {
	VerifyPreCheckout(payload string) error
}

// AnswerPreCheckoutCommandHandler accepts a payment only when its payload
// matches the configured invoice payload. A mismatch is a normal outcome: the
// query is declined and no error is returned.
type AnswerPreCheckoutCommandHandler struct {
	verifier  PreCheckoutVerifier
	messenger ports.Messenger
	logger    *slog.Logger
}

// NewAnswerPreCheckoutCommandHandler creates the handler.
func NewAnswerPreCheckoutCommandHandler(
	verifier PreCheckoutVerifier,
	messenger ports.Messenger,
	logger *slog.Logger,
) AnswerPreCheckoutCommandHandler {
	return AnswerPreCheckoutCommandHandler{
		verifier:  verifier,
		messenger: messenger,
		logger:    logger.With("component", "pre_checkout"),
	}
}

// Handle answers the pre-checkout query.
func (h *AnswerPreCheckoutCommandHandler) Handle(ctx context.Context, cmd AnswerPreCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.verifier.VerifyPreCheckout(cmd.Payload()); err != nil {
		h.logger.WarnContext(ctx, "pre-checkout declined", "query_id", cmd.QueryID(), "error", err)
		return h.messenger.AnswerPreCheckout(ctx, cmd.QueryID(), false, PreCheckoutRejectionMessage)
	}

	return h.messenger.AnswerPreCheckout(ctx, cmd.QueryID(), true, "")
}
