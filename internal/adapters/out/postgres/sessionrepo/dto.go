// Package sessionrepo provides data transfer objects and mapping functions for
// delivery session persistence. This package implements the repository pattern
// for the session aggregate, handling the conversion between domain entities
// and database representations.
package sessionrepo

import (
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting delivery
// session aggregates. Loads are owned rows deleted with the session.
type SessionDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	DroneID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time           `gorm:"not null"`
	CompletedAt *time.Time          `gorm:"index"`
	Loads       []MedicationLoadDTO `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "delivery_sessions" instead of "session_dtos".
func (SessionDTO) TableName() string {
	return "delivery_sessions"
}

// MedicationLoadDTO represents one manifest row of a session.
// The (session_id, medication_id) pair is unique: repeated loads of one
// medication accumulate quantity in place rather than adding rows.
type MedicationLoadDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_medication"`
	DroneID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_medication"`
	Quantity     int       `gorm:"type:int;not null"`
	LoadedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for manifest rows.
// Overrides GORM's default naming convention to use "medication_loads" instead of "medication_load_dtos".
func (MedicationLoadDTO) TableName() string {
	return "medication_loads"
}

// fromDomain converts a session domain aggregate to its database representation.
// Maps the aggregate's manifest rows together with the session itself.
func fromDomain(aggregate *session.DeliverySession) SessionDTO {
	sessionID := aggregate.ID().Bytes()
	loads := make([]MedicationLoadDTO, 0, len(aggregate.Loads()))

	for _, load := range aggregate.Loads() {
		loads = append(loads, MedicationLoadDTO{
			ID:           load.ID().Bytes(),
			SessionID:    sessionID,
			DroneID:      load.DroneID().Bytes(),
			MedicationID: load.MedicationID().Bytes(),
			Quantity:     load.Quantity(),
			LoadedAt:     load.LoadedAt(),
		})
	}

	return SessionDTO{
		ID:          sessionID,
		DroneID:     aggregate.DroneID().Bytes(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Loads:       loads,
	}
}

// toDomain converts a database DTO to a session domain aggregate.
// Reconstructs the complete aggregate including manifest rows using RestoreDeliverySession.
func toDomain(dto SessionDTO) (*session.DeliverySession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	droneID, err := kernel.UUIDFromBytes(dto.DroneID[:])
	if err != nil {
		return nil, err
	}

	loads := make([]*session.MedicationLoad, 0, len(dto.Loads))
	for _, loadDTO := range dto.Loads {
		load, loadErr := loadToDomain(loadDTO)
		if loadErr != nil {
			return nil, loadErr
		}
		loads = append(loads, load)
	}

	return session.RestoreDeliverySession(id, droneID, dto.CreatedAt, dto.CompletedAt, loads)
}

// loadToDomain converts a manifest row DTO to its domain entity.
func loadToDomain(dto MedicationLoadDTO) (*session.MedicationLoad, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	droneID, err := kernel.UUIDFromBytes(dto.DroneID[:])
	if err != nil {
		return nil, err
	}

	medicationID, err := kernel.UUIDFromBytes(dto.MedicationID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreMedicationLoad(id, droneID, medicationID, dto.Quantity, dto.LoadedAt)
}
