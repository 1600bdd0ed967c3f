package reminder_test

import (
	"testing"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/reminder"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminder(t *testing.T) {
	due := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)

	t.Run("should create a pending reminder", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := reminder.NewReminder(id, "42", "Enjoy your pizza!", due)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().Equal(id))
		assert.Equal(t, "42", r.ChatID())
		assert.Equal(t, "Enjoy your pizza!", r.Text())
		assert.Equal(t, due, r.DueAt())
		assert.Equal(t, reminder.Pending, r.Status())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		r, err := reminder.NewReminder(kernel.UUID{}, "", "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, r)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "chat id")
		assert.Contains(t, err.Error(), "reminder text")
		assert.Contains(t, err.Error(), "due at")
	})

	t.Run("should reject unknown status on restore", func(t *testing.T) {
		_, err := reminder.RestoreReminder(kernel.NewUUID(), "42", "x", due, reminder.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestReminder_IsDue(t *testing.T) {
	due := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	r, _ := reminder.NewReminder(kernel.NewUUID(), "42", "x", due)

	assert.False(t, r.IsDue(due.Add(-time.Second)))
	assert.True(t, r.IsDue(due))
	assert.True(t, r.IsDue(due.Add(time.Minute)))

	require.NoError(t, r.MarkSent())
	assert.False(t, r.IsDue(due.Add(time.Minute)))
}

func TestReminder_MarkSent(t *testing.T) {
	r, _ := reminder.NewReminder(kernel.NewUUID(), "42", "x", time.Now())

	require.NoError(t, r.MarkSent())
	assert.Equal(t, reminder.Sent, r.Status())

	err := r.MarkSent()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "Sent is not a valid status to mark as sent")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Pending", reminder.Pending.String())
	assert.Equal(t, "Sent", reminder.Sent.String())
	assert.Equal(t, "Unknown", reminder.Status(9).String())
	require.Error(t, reminder.Unknown.Validate())
	require.NoError(t, reminder.Sent.Validate())
}
