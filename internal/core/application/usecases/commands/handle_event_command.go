package commands

import (
	"errors"

	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/pkg/guard"
)

var (
	ErrHandleEventCommandIsNotConstructed = errors.New(
		"HandleEventCommand must be created via NewHandleEventCommand constructor",
	)
)

// HandleEventCommand carries one user event into the dialog controller.
//
// Example:
//
//	event, _ := dialog.NewCallbackEvent("42", 1001, dialog.GotoCart)
//	cmd, err := NewHandleEventCommand(event)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type HandleEventCommand struct { //nolint:recvcheck //using for validation
	event dialog.Event

	guard guard.ConstructorGuard
}

// NewHandleEventCommand wraps a constructed event.
func NewHandleEventCommand(event dialog.Event) (HandleEventCommand, error) {
	if err := event.Validate(); err != nil {
		return HandleEventCommand{}, err
	}

	return HandleEventCommand{
		event: event,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c HandleEventCommand) Validate() error {
	return c.guard.Validate(ErrHandleEventCommandIsNotConstructed)
}

// Event returns the user event.
func (c HandleEventCommand) Event() dialog.Event {
	return c.event
}
