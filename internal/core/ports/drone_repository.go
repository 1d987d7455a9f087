// Package ports defines repository and unit-of-work interfaces for the
// drone dispatch core. These interfaces establish the contract between
// the domain layer and the persistence adapter, enabling dependency
// inversion and testability; the core never sees raw store errors,
// only the errs taxonomy.
package ports

import (
	"context"

	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for drone aggregates.
type DroneRepository interface {
	// Add persists a newly registered drone.
	// Returns a DuplicateError when the serial number already exists.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone by its unique identifier.
	// Returns an ObjectNotFoundError when no such drone exists.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetForUpdate retrieves a drone and locks its row for the duration
	// of the surrounding transaction, so two concurrent acquisitions
	// cannot both observe an Idle state. Outside a transaction it
	// behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetBySerialNumber retrieves a drone by its unique serial, used to
	// detect registration conflicts. Returns an ObjectNotFoundError
	// when the serial is unused.
	GetBySerialNumber(ctx context.Context, serialNumber string) (*drone.Drone, error)

	// GetAll retrieves an unordered snapshot of the whole fleet.
	// Reads take no locks and may observe slightly stale data.
	GetAll(ctx context.Context) ([]*drone.Drone, error)
}
