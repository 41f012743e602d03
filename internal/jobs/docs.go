// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the order lifecycle.
//
// # Available Jobs
//
// 1. StalePaymentCancellationJob - Periodically cancels orders that have been
// waiting for payment longer than the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStalePaymentsHandler, schedule, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cancellation schedule and the payment age threshold come from
// configuration, so operations can tune both without a redeploy.
//
// # Error Handling
//
// Job failures are logged and the next scheduled run retries from scratch.
// A failed run never leaves partially cancelled orders because the handler
// commits all cancellations in a single transaction.
package jobs
