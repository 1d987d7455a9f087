// Package auditrepo provides data transfer objects and mapping functions for
// battery audit persistence. Audit rows are append-only snapshots written by
// the periodic sweep.
package auditrepo

import (
	"time"

	"dronedispatch/internal/core/domain/model/audit"
	"dronedispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatteryAuditDTO represents the database structure for battery snapshots.
type BatteryAuditDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DroneID         uuid.UUID `gorm:"type:uuid;not null;index"`
	SerialNumber    string    `gorm:"type:varchar(100);not null"`
	BatteryCapacity int       `gorm:"type:int;not null"`
	CreatedAt       time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for audit rows.
// Overrides GORM's default naming convention to use "battery_audits" instead of "battery_audit_dtos".
func (BatteryAuditDTO) TableName() string {
	return "battery_audits"
}

// fromDomain converts an audit snapshot to its database representation.
func fromDomain(aggregate *audit.BatteryAudit) BatteryAuditDTO {
	return BatteryAuditDTO{
		ID:              aggregate.ID().Bytes(),
		DroneID:         aggregate.DroneID().Bytes(),
		SerialNumber:    aggregate.SerialNumber(),
		BatteryCapacity: aggregate.BatteryCapacity(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an audit snapshot.
func toDomain(dto BatteryAuditDTO) (*audit.BatteryAudit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	droneID, err := kernel.UUIDFromBytes(dto.DroneID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreBatteryAudit(id, droneID, dto.SerialNumber, dto.BatteryCapacity, dto.CreatedAt)
}
