package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetmanager/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ComplianceAlertJob runs the compliance scan on a cron schedule. Each run
// covers documents expiring within the configured warning window.
type ComplianceAlertJob struct {
	handler    commands.RaiseComplianceAlertsCommandHandler
	cron       *cron.Cron
	schedule   string
	warnWindow time.Duration
	logger     *slog.Logger
}

// NewComplianceAlertJob creates a new job for compliance scans. The schedule
// is a six-field cron expression with a seconds column.
func NewComplianceAlertJob(
	handler commands.RaiseComplianceAlertsCommandHandler,
	schedule string,
	warnWindow time.Duration,
	logger *slog.Logger,
) *ComplianceAlertJob {
	return &ComplianceAlertJob{
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		schedule:   schedule,
		warnWindow: warnWindow,
		logger:     logger.With("component", "compliance_alert_job"),
	}
}

// Start begins the compliance alert job on its schedule.
func (j *ComplianceAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRaiseComplianceAlertsCommand(time.Now().UTC(), j.warnWindow)
		if err != nil {
			j.logger.ErrorContext(ctx, "Compliance alert job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Compliance alert job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Compliance alert job started", "schedule", j.schedule)
	return nil
}

// Stop stops the compliance alert job.
func (j *ComplianceAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Compliance alert job stopped")
}
