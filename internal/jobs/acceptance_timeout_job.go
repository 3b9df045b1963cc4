package jobs

import (
	"context"
	"log/slog"

	"quadmesh/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AcceptanceTimeoutJob sweeps orders whose assigned rider let the acceptance
// window lapse. Runs every second to release the rider and offer the order to
// the next one in the queue.
type AcceptanceTimeoutJob struct {
	handler commands.ReassignExpiredCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAcceptanceTimeoutJob creates a new job enforcing acceptance deadlines.
// Uses ReassignExpiredCommandHandler to process lapsed assignments every second.
func NewAcceptanceTimeoutJob(handler commands.ReassignExpiredCommandHandler, logger *slog.Logger) *AcceptanceTimeoutJob {
	return &AcceptanceTimeoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "acceptance_timeout_job"),
	}
}

// Start begins the acceptance timeout job to run every second.
func (j *AcceptanceTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReassignExpiredCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Acceptance timeout job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Acceptance timeout job started (running every second)")
	return nil
}

// Stop stops the acceptance timeout job.
func (j *AcceptanceTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Acceptance timeout job stopped")
}
