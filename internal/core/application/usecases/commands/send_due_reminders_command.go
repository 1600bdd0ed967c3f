package commands

import (
	"errors"
	"fmt"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// DefaultReminderBatch is used when no batch size is configured.
const DefaultReminderBatch = 50

var (
	ErrSendDueRemindersCommandIsNotConstructed = errors.New(
		"SendDueRemindersCommand must be created via NewSendDueRemindersCommand constructor",
	)
)

// SendDueRemindersCommand triggers delivery of pending reminders whose due
// time has come. It is run periodically by the reminder job.
//
// Example:
//
//	cmd, _ := NewSendDueRemindersCommand(50)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("reminders failed: %v", err)
//	}
type SendDueRemindersCommand struct { //nolint:recvcheck //using for validation
	batch int

	guard guard.ConstructorGuard
}

// NewSendDueRemindersCommand creates the command sending at most batch reminders.
func NewSendDueRemindersCommand(batch int) (SendDueRemindersCommand, error) {
	if batch <= 0 {
		return SendDueRemindersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch is invalid",
			fmt.Errorf("%d is not greater than 0", batch),
		)
	}

	return SendDueRemindersCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendDueRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDueRemindersCommandIsNotConstructed)
}

// Batch returns the maximum number of reminders sent in one run.
func (c SendDueRemindersCommand) Batch() int {
	return c.batch
}
