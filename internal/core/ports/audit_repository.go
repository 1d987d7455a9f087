package ports

import (
	"context"

	"dronedispatch/internal/core/domain/model/audit"
	"dronedispatch/internal/core/domain/model/kernel"
)

// BatteryAuditRepository persists battery level snapshots taken by the
// periodic audit sweep.
type BatteryAuditRepository interface {
	// Add persists a new audit record.
	Add(ctx context.Context, aggregate *audit.BatteryAudit) error

	// GetByDroneID retrieves the drone's audit history, newest first,
	// capped at the retention limit.
	GetByDroneID(ctx context.Context, droneID kernel.UUID) ([]*audit.BatteryAudit, error)
}
