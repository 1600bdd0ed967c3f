package commands

import (
	"errors"
	"strings"

	"orderbot/internal/pkg/guard"
)

var (
	ErrCompletePaymentCommandIsNotConstructed = errors.New(
		"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
	)
	ErrChatIDIsRequired = errors.New("chat id is required")
)

// CompletePaymentCommand reports a successful card payment in a chat.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	chatID string

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates the command.
func NewCompletePaymentCommand(chatID string) (CompletePaymentCommand, error) {
	if strings.TrimSpace(chatID) == "" {
		return CompletePaymentCommand{}, ErrChatIDIsRequired
	}

	return CompletePaymentCommand{chatID: chatID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

func (c CompletePaymentCommand) ChatID() string {
	return c.chatID
}
