package queries

import (
	"errors"
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/guard"
)

var (
	ErrGetLoadedMedicationsQueryIsNotConstructed = errors.New(
		"GetLoadedMedicationsQuery must be created via NewGetLoadedMedicationsQuery constructor",
	)
)

// GetLoadedMedicationsQuery retrieves the medication manifest of a drone.
// The manifest comes from the drone's open session when one exists, and
// otherwise from its most recent session, so the last known payload stays
// visible after the loading window closes.
//
// Example:
//
//	query, err := NewGetLoadedMedicationsQuery(droneID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetLoadedMedicationsQueryHandler(db)
//	manifest, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve manifest: %w", err)
//	}
type GetLoadedMedicationsQuery struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadedMedicationsQuery creates a query for a drone's manifest.
func NewGetLoadedMedicationsQuery(droneID kernel.UUID) (GetLoadedMedicationsQuery, error) {
	query := GetLoadedMedicationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDroneID(droneID); err != nil {
		return GetLoadedMedicationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLoadedMedicationsQueryIsNotConstructed if validation fails.
func (q GetLoadedMedicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadedMedicationsQueryIsNotConstructed)
}

// DroneID returns the drone ID from the query.
func (q GetLoadedMedicationsQuery) DroneID() kernel.UUID {
	return q.droneID
}

func (q *GetLoadedMedicationsQuery) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	q.droneID = droneID
	return nil
}

// GetLoadedMedicationsQueryResponse represents one manifest row: a
// medication joined with its accumulated quantity in the session.
type GetLoadedMedicationsQueryResponse struct {
	MedicationID kernel.UUID
	Name         string
	Code         string
	Weight       float64
	Quantity     int
	LoadedAt     time.Time
}
