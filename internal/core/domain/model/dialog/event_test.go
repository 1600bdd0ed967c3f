package dialog_test

import (
	"testing"

	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextEvent(t *testing.T) {
	t.Run("should trim text and expose it as trigger", func(t *testing.T) {
		e, err := dialog.NewTextEvent("100", 7, "  Lenina 1  ")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, dialog.TextEvent, e.Kind())
		assert.Equal(t, "100", e.ChatID())
		assert.Equal(t, int64(7), e.MessageID())
		assert.Equal(t, "Lenina 1", e.Trigger())
	})

	t.Run("should recognize the restart command", func(t *testing.T) {
		e, err := dialog.NewTextEvent("100", 7, "/start")

		require.NoError(t, err)
		assert.Equal(t, dialog.RestartEvent, e.Kind())
		assert.True(t, e.Is(dialog.RestartCommand))
	})

	t.Run("should require chat id", func(t *testing.T) {
		_, err := dialog.NewTextEvent(" ", 7, "hello")

		require.ErrorIs(t, err, dialog.ErrChatIDIsRequired)
	})
}

func TestNewCallbackEvent(t *testing.T) {
	t.Run("should expose the token as trigger", func(t *testing.T) {
		e, err := dialog.NewCallbackEvent("100", 9, dialog.GotoCart)

		require.NoError(t, err)
		assert.Equal(t, dialog.CallbackEvent, e.Kind())
		assert.Equal(t, dialog.GotoCart, e.Token())
		assert.True(t, e.Is(dialog.GotoCart))
		assert.False(t, e.Is(dialog.GotoMenu))
	})

	t.Run("should require token", func(t *testing.T) {
		_, err := dialog.NewCallbackEvent("100", 9, "")

		require.ErrorIs(t, err, dialog.ErrTokenIsRequired)
	})

	t.Run("should join chat id and token errors", func(t *testing.T) {
		_, err := dialog.NewCallbackEvent("", 9, "")

		require.ErrorIs(t, err, dialog.ErrTokenIsRequired)
		require.ErrorIs(t, err, dialog.ErrChatIDIsRequired)
	})
}

func TestNewLocationEvent(t *testing.T) {
	t.Run("should carry coordinates and never match a text trigger", func(t *testing.T) {
		loc, err := kernel.NewLocation(55.75, 37.61)
		require.NoError(t, err)

		e, err := dialog.NewLocationEvent("100", 3, loc)

		require.NoError(t, err)
		assert.Equal(t, dialog.LocationEvent, e.Kind())
		assert.InDelta(t, 55.75, e.Location().Latitude(), 1e-9)
		assert.False(t, e.Is(""))
	})

	t.Run("should reject a zero location", func(t *testing.T) {
		_, err := dialog.NewLocationEvent("100", 3, kernel.Location{})

		require.Error(t, err)
	})
}

func TestEvent_Validate(t *testing.T) {
	var e dialog.Event

	require.ErrorIs(t, e.Validate(), dialog.ErrEventIsNotConstructed)
	assert.Equal(t, "unknown", e.Kind().String())
}
