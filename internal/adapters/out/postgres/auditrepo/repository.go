package auditrepo

import (
	"context"

	"dronedispatch/internal/core/domain/model/audit"
	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// historyLimit caps how many snapshot rows a history read returns.
const historyLimit = 100

// GormBatteryAuditRepository implements BatteryAuditRepository using GORM.
type GormBatteryAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatteryAuditRepository creates a new GORM battery audit repository.
func NewGormBatteryAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormBatteryAuditRepository {
	return &GormBatteryAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new battery snapshot to the database.
func (r *GormBatteryAuditRepository) Add(ctx context.Context, aggregate *audit.BatteryAudit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("add battery audit", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByDroneID retrieves the drone's snapshot history, newest first,
// capped at the retention limit.
func (r *GormBatteryAuditRepository) GetByDroneID(ctx context.Context, droneID kernel.UUID) ([]*audit.BatteryAudit, error) {
	if err := droneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BatteryAuditDTO
	if err := r.db.WithContext(ctx).
		Where("drone_id = ?", droneID.Bytes()).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	audits := make([]*audit.BatteryAudit, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		audits = append(audits, a)
	}

	return audits, nil
}
