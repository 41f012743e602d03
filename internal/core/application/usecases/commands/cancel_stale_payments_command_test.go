package commands_test

import (
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStalePaymentsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelStalePaymentsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.MaxAge())
}

func TestNewCancelStalePaymentsCommand_InvalidMaxAge(t *testing.T) {
	for _, maxAge := range []time.Duration{0, -time.Minute} {
		_, err := commands.NewCancelStalePaymentsCommand(maxAge)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrMaxAgeIsInvalid)
	}
}

func TestCancelStalePaymentsCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CancelStalePaymentsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelStalePaymentsCommandIsNotConstructed)
}
