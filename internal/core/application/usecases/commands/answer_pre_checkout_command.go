package commands

import (
	"errors"
	"strings"

	"orderbot/internal/pkg/guard"
)

var (
	ErrAnswerPreCheckoutCommandIsNotConstructed = errors.New(
		"AnswerPreCheckoutCommand must be created via NewAnswerPreCheckoutCommand constructor",
	)
	ErrQueryIDIsRequired = errors.New("pre-checkout query id is required")
)

// AnswerPreCheckoutCommand asks to approve or decline a payment the
// messenger is about to charge.
type AnswerPreCheckoutCommand struct { //nolint:recvcheck //using for validation
	queryID string
	payload string

	guard guard.ConstructorGuard
}

// NewAnswerPreCheckoutCommand creates the command. The payload may be anything;
// it is checked by the handler.
func NewAnswerPreCheckoutCommand(queryID, payload string) (AnswerPreCheckoutCommand, error) {
	if strings.TrimSpace(queryID) == "" {
		return AnswerPreCheckoutCommand{}, ErrQueryIDIsRequired
	}

	return AnswerPreCheckoutCommand{
		queryID: queryID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AnswerPreCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrAnswerPreCheckoutCommandIsNotConstructed)
}

func (c AnswerPreCheckoutCommand) QueryID() string {
	return c.queryID
}

func (c AnswerPreCheckoutCommand) Payload() string {
	return c.payload
}
