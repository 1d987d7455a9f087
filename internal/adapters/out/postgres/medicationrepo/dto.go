// Package medicationrepo provides data transfer objects and mapping functions
// for the medication catalog. The catalog is reference data: rows are seeded
// at startup and only ever read afterwards.
package medicationrepo

import (
	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/medication"

	"github.com/google/uuid"
)

// MedicationDTO represents the database structure for catalog rows.
type MedicationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Weight float64   `gorm:"type:numeric(6,2);not null"`
	Code   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the database table name for catalog rows.
// Overrides GORM's default naming convention to use "medications" instead of "medication_dtos".
func (MedicationDTO) TableName() string {
	return "medications"
}

// toDomain converts a catalog row to its domain entity.
func toDomain(dto MedicationDTO) (*medication.Medication, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return medication.RestoreMedication(id, dto.Name, dto.Weight, dto.Code)
}
