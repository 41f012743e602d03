package commands

import (
	"errors"
	"time"

	"printshop/internal/pkg/guard"
)

var (
	ErrCancelStalePaymentsCommandIsNotConstructed = errors.New(
		"CancelStalePaymentsCommand must be created via NewCancelStalePaymentsCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CancelStalePaymentsCommand represents a request to cancel all orders that
// have been waiting for payment longer than the given age. Issued by the
// background job scheduler, not by users.
type CancelStalePaymentsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStalePaymentsCommand creates a command to cancel stale unpaid orders.
// Validates that the age threshold is positive.
func NewCancelStalePaymentsCommand(maxAge time.Duration) (CancelStalePaymentsCommand, error) {
	cancelCommand := CancelStalePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setMaxAge(maxAge); err != nil {
		return CancelStalePaymentsCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStalePaymentsCommandIsNotConstructed if validation fails.
func (c CancelStalePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePaymentsCommandIsNotConstructed)
}

// MaxAge returns how long an order may sit in PENDING_PAYMENT before it is
// considered stale.
func (c CancelStalePaymentsCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStalePaymentsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
