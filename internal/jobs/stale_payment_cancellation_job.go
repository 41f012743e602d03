package jobs

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalePaymentCancellationJob cancels orders stuck in PENDING_PAYMENT.
// Buyers who never complete payment would otherwise hold orders open forever.
type StalePaymentCancellationJob struct {
	handler  commands.CancelStalePaymentsCommandHandler
	cron     *cron.Cron
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
}

// NewStalePaymentCancellationJob creates the cancellation job.
// The schedule is a six-field cron expression; maxAge is how long an order
// may wait for payment before it is cancelled.
func NewStalePaymentCancellationJob(
	handler commands.CancelStalePaymentsCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StalePaymentCancellationJob {
	return &StalePaymentCancellationJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger.With("component", "stale_payment_cancellation_job"),
	}
}

// Start schedules the cancellation job.
func (j *StalePaymentCancellationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStalePaymentsCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale payment cancellation job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale payment cancellation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale payment cancellation job started",
		"schedule", j.schedule, "maxAge", j.maxAge.String())
	return nil
}

// Stop stops the cancellation job.
func (j *StalePaymentCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale payment cancellation job stopped")
}
