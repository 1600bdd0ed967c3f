package commands

import (
	"context"
	"log/slog"
	"time"

	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/ports"
)

// SendDueRemindersCommandHandler sends due reminders and marks them Sent, all
// in one transaction. A reminder whose message could not be sent stays
// Pending and is retried by the next run.
//
// Delivery is at least once: messages leave before the commit, so when an
// Update or the Commit fails the whole batch stays Pending and reminders
// already delivered are sent again.
type SendDueRemindersCommandHandler struct {
	uowFactory ReminderUoWFactory
	messenger  ports.Messenger
	now        func() time.Time
	logger     *slog.Logger
}

// NewSendDueRemindersCommandHandler creates the handler. now defaults to time.Now.
func NewSendDueRemindersCommandHandler(
	uowFactory ReminderUoWFactory,
	messenger ports.Messenger,
	now func() time.Time,
	logger *slog.Logger,
) SendDueRemindersCommandHandler {
	if now == nil {
		now = time.Now
	}

	return SendDueRemindersCommandHandler{
		uowFactory: uowFactory,
		messenger:  messenger,
		now:        now,
		logger:     logger.With("component", "reminders"),
	}
}

// Handle processes one batch of due reminders.
func (h *SendDueRemindersCommandHandler) Handle(ctx context.Context, cmd SendDueRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReminderRepository()
	due, err := repo.GetDue(ctx, h.now(), cmd.Batch())
	if err != nil {
		return err
	}

	for _, r := range due {
		if err = h.messenger.SendText(ctx, outbound.Text{ChatID: r.ChatID(), Body: r.Text()}); err != nil {
			h.logger.WarnContext(ctx, "reminder not sent", "reminder_id", r.ID().String(), "chat_id", r.ChatID(), "error", err)
			continue
		}

		if err = r.MarkSent(); err != nil {
			return err
		}

		if err = repo.Update(ctx, r); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
