package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fleetmanager/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	complianceAlertJob *ComplianceAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	complianceHandler commands.RaiseComplianceAlertsCommandHandler,
	complianceSchedule string,
	complianceWarnWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		complianceAlertJob: NewComplianceAlertJob(complianceHandler, complianceSchedule, complianceWarnWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.complianceAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start compliance alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.complianceAlertJob.Stop()
}
