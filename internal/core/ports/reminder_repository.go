package ports

import (
	"context"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/reminder"
)

// ReminderRepository defines the persistence contract for reminders.
type ReminderRepository interface {
	// Add persists a new reminder.
	Add(ctx context.Context, aggregate *reminder.Reminder) error

	// Update persists the status of an existing reminder.
	Update(ctx context.Context, aggregate *reminder.Reminder) error

	// Get retrieves a reminder by id.
	Get(ctx context.Context, id kernel.UUID) (*reminder.Reminder, error)

	// GetDue returns at most limit Pending reminders with due time not after
	// now, oldest first.
	GetDue(ctx context.Context, now time.Time, limit int) ([]*reminder.Reminder, error)
}
