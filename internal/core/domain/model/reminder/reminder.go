package reminder

import (
	"errors"
	"strings"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

var (
	// ErrReminderIsNotConstructed is returned when a Reminder was not created
	// through NewReminder or RestoreReminder.
	ErrReminderIsNotConstructed = errors.New("Reminder must be created via NewReminder constructor")
)

// Reminder is a message scheduled for a customer after their order was
// handed to a courier. It is sent once by the reminder job and then marked
// Sent.
type Reminder struct {
	id            kernel.UUID
	chatID        string
	text          string
	dueAt         time.Time
	status        Status
	isConstructed bool
}

// NewReminder creates a Pending reminder due at dueAt.
//
// Example:
//
//	r, err := reminder.NewReminder(kernel.NewUUID(), "42", "How was your pizza?", time.Now().Add(time.Hour))
func NewReminder(id kernel.UUID, chatID, text string, dueAt time.Time) (*Reminder, error) {
	return RestoreReminder(id, chatID, text, dueAt, Pending)
}

// RestoreReminder rebuilds a persisted reminder.
func RestoreReminder(id kernel.UUID, chatID, text string, dueAt time.Time, status Status) (*Reminder, error) {
	r := &Reminder{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setChatID(chatID),
		r.setText(text),
		r.setDueAt(dueAt),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Reminder was built by one of its constructors.
func (r *Reminder) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReminderIsNotConstructed
	}
	return nil
}

func (r *Reminder) ID() kernel.UUID {
	return r.id
}

func (r *Reminder) ChatID() string {
	return r.chatID
}

func (r *Reminder) Text() string {
	return r.text
}

func (r *Reminder) DueAt() time.Time {
	return r.dueAt
}

func (r *Reminder) Status() Status {
	return r.status
}

// IsDue reports whether a pending reminder should be sent at now.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.status == Pending && !r.dueAt.After(now)
}

// MarkSent records that the reminder was delivered.
func (r *Reminder) MarkSent() error {
	next, err := r.status.MarkSent()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Reminder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reminder) setChatID(chatID string) error {
	if strings.TrimSpace(chatID) == "" {
		return errs.NewValueIsRequiredError("chat id")
	}
	r.chatID = chatID
	return nil
}

func (r *Reminder) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("reminder text")
	}
	r.text = text
	return nil
}

func (r *Reminder) setDueAt(dueAt time.Time) error {
	if dueAt.IsZero() {
		return errs.NewValueIsRequiredError("due at")
	}
	r.dueAt = dueAt.UTC()
	return nil
}

func (r *Reminder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
