package jobs

import (
	"context"
	"log/slog"

	"dronedispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAuditCronSpec runs the battery sweep every five minutes.
// The expression includes a seconds field.
const DefaultAuditCronSpec = "0 */5 * * * *"

// BatteryAuditJob manages the scheduled battery level sweep.
// Each run snapshots the battery of every drone in the fleet.
type BatteryAuditJob struct {
	handler  commands.AuditBatteriesCommandHandler
	cron     *cron.Cron
	cronSpec string
	logger   *slog.Logger
}

// NewBatteryAuditJob creates a new job for battery sweeps.
// cronSpec is a six-field cron expression; pass DefaultAuditCronSpec for
// the standard five minute cadence.
func NewBatteryAuditJob(
	handler commands.AuditBatteriesCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *BatteryAuditJob {
	return &BatteryAuditJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		cronSpec: cronSpec,
		logger:   logger.With("component", "battery_audit_job"),
	}
}

// Start begins the battery audit job on its configured schedule.
func (j *BatteryAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		cmd := commands.NewAuditBatteriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Battery audit job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Battery audit job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the battery audit job.
func (j *BatteryAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Battery audit job stopped")
}
