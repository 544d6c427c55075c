package jobs

import (
	"context"
	"log/slog"

	"trattoria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationSweepJob completes pending reservations whose requested date
// has passed. Runs once a day, shortly after midnight, and once more at
// startup so a restarted instance catches up immediately.
type ReservationSweepJob struct {
	handler commands.CompleteStaleReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationSweepJob creates the daily stale reservation sweep.
func NewReservationSweepJob(
	handler commands.CompleteStaleReservationsCommandHandler,
	logger *slog.Logger,
) *ReservationSweepJob {
	return &ReservationSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reservation_sweep_job"),
	}
}

// Start schedules the sweep and runs it once right away.
func (j *ReservationSweepJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", j.run)
	if err != nil {
		return err
	}

	j.run()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation sweep job started (running daily at 00:05)")
	return nil
}

// Stop stops the sweep job.
func (j *ReservationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation sweep job stopped")
}

func (j *ReservationSweepJob) run() {
	ctx := context.Background()
	cmd := commands.NewCompleteStaleReservationsCommand()

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Reservation sweep failed", "error", err)
	}
}
