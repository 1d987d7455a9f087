// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the drone fleet.
//
// # Available Jobs
//
// 1. BatteryAuditJob - Runs on a configurable cadence (five minutes by
// default) to snapshot every drone's battery level and flag drones whose
// charge fell below the loading threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(auditBatteriesHandler, jobs.DefaultAuditCronSpec, logger)
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
// The audit job uses a six-field cron expression (with seconds). The
// default "0 */5 * * * *" fires at every fifth minute.
//
// # Error Handling
//
//   - A drone whose snapshot fails is logged and skipped; the sweep
//     continues with the rest of the fleet
//   - The job returns an error only when the fleet itself cannot be read
//   - Failed job starts will stop any already running jobs
package jobs
