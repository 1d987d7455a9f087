// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dronedispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DroneRepoFactory provides access to drone repository within a transaction.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// SessionRepoFactory provides access to session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// MedicationCatalogFactory provides access to the medication catalog within a transaction.
	MedicationCatalogFactory interface {
		MedicationCatalog() ports.MedicationCatalog
	}

	// AuditRepoFactory provides access to the battery audit repository within a transaction.
	AuditRepoFactory interface {
		BatteryAuditRepository() ports.BatteryAuditRepository
	}

	// DroneUoW manages transactions for drone-only operations.
	// Used when commands only modify drone aggregates.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates new drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// SessionUoW manages transactions across drone and session aggregates.
	// Used when a command opens or closes a loading window for a drone.
	SessionUoW interface {
		TxManager
		DroneRepoFactory
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// LoadUoW manages transactions for medication loading operations.
	// Coordinates the drone, its open session, and the medication catalog.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sessionRepo := uow.SessionRepository()
	//   catalog := uow.MedicationCatalog()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LoadUoW interface {
		TxManager
		DroneRepoFactory
		SessionRepoFactory
		MedicationCatalogFactory
	}

	// LoadUoWFactory creates new loading unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// AuditUoW manages transactions for battery audit sweeps.
	AuditUoW interface {
		TxManager
		DroneRepoFactory
		AuditRepoFactory
	}

	// AuditUoWFactory creates new audit unit of work instances.
	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
