// Package dronerepo provides data transfer objects and mapping functions for drone persistence.
// This package implements the repository pattern for the drone domain aggregate, handling
// the conversion between domain entities and database representations.
package dronerepo

import (
	"time"

	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO represents the database structure for persisting drone aggregates.
// The serial number carries a unique index so fleet registration conflicts
// surface as database constraint violations.
type DroneDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SerialNumber    string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Model           string    `gorm:"type:varchar(32);not null"`
	WeightLimit     float64   `gorm:"type:numeric(6,2);not null"`
	BatteryCapacity int       `gorm:"type:int;not null"`
	State           string    `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time `gorm:"not null;<-:create"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for drone entities.
// Overrides GORM's default naming convention to use "drones" instead of "drone_dtos".
func (DroneDTO) TableName() string {
	return "drones"
}

// fromDomain converts a drone domain aggregate to its database representation.
func fromDomain(aggregate *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:              aggregate.ID().Bytes(),
		SerialNumber:    aggregate.SerialNumber(),
		Model:           aggregate.Model().String(),
		WeightLimit:     aggregate.WeightLimit(),
		BatteryCapacity: aggregate.BatteryCapacity(),
		State:           aggregate.State().String(),
	}
}

// toDomain converts a database DTO to a drone domain aggregate.
// Reconstructs the aggregate with its persisted state using RestoreDrone.
func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	model, err := drone.ModelFromString(dto.Model)
	if err != nil {
		return nil, err
	}

	state, err := drone.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(id, dto.SerialNumber, model, dto.WeightLimit, dto.BatteryCapacity, state)
}
