// Package jobs provides scheduled background tasks for the fleet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fleet manager.
//
// # Available Jobs
//
// 1. ComplianceAlertJob - Scans the fleet on a configurable schedule and
// appends a notification log entry for every insurance policy or pollution
// certificate expiring within the warning window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(complianceHandler, schedule, warnWindow, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried on the next tick. Alert deduplication
// lives in the suppressor, not the scheduler, so overlapping windows never
// double-notify a recipient.
package jobs
