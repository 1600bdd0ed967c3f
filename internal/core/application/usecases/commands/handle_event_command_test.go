package commands_test

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/dialog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandleEventCommand(t *testing.T) {
	event, err := dialog.NewCallbackEvent("42", 7, dialog.GotoCart)
	require.NoError(t, err)

	cmd, err := commands.NewHandleEventCommand(event)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, event, cmd.Event())
}

func TestHandleEventCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.HandleEventCommand

	assert.Equal(t, commands.ErrHandleEventCommandIsNotConstructed, cmd.Validate())
}
