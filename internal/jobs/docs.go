// Package jobs provides scheduled background tasks for the restaurant
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that keep the stored data current.
//
// # Available Jobs
//
// 1. ReservationSweepJob - Runs daily to complete pending reservations whose date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeStaleReservationsHandler, logger)
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
// The sweep uses the cron expression "5 0 * * *" and also runs once when
// the job starts, so a freshly deployed instance does not wait a full day
// before catching up on reservations that went stale while it was down.
package jobs
