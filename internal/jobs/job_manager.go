package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePaymentCancellationJob *StalePaymentCancellationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStalePaymentsHandler commands.CancelStalePaymentsCommandHandler,
	cancellationSchedule string,
	paymentMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePaymentCancellationJob: NewStalePaymentCancellationJob(
			cancelStalePaymentsHandler, cancellationSchedule, paymentMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePaymentCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale payment cancellation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePaymentCancellationJob.Stop()
}
