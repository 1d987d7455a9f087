package queries

import (
	"errors"
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/guard"
)

var (
	ErrGetBatteryAuditsQueryIsNotConstructed = errors.New(
		"GetBatteryAuditsQuery must be created via NewGetBatteryAuditsQuery constructor",
	)
)

// GetBatteryAuditsQuery retrieves a drone's battery snapshot history,
// newest first, capped at the retention limit.
type GetBatteryAuditsQuery struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatteryAuditsQuery creates a query for a drone's audit history.
func NewGetBatteryAuditsQuery(droneID kernel.UUID) (GetBatteryAuditsQuery, error) {
	query := GetBatteryAuditsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDroneID(droneID); err != nil {
		return GetBatteryAuditsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBatteryAuditsQueryIsNotConstructed if validation fails.
func (q GetBatteryAuditsQuery) Validate() error {
	return q.guard.Validate(ErrGetBatteryAuditsQueryIsNotConstructed)
}

// DroneID returns the drone ID from the query.
func (q GetBatteryAuditsQuery) DroneID() kernel.UUID {
	return q.droneID
}

func (q *GetBatteryAuditsQuery) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	q.droneID = droneID
	return nil
}

// GetBatteryAuditsQueryResponse represents one battery snapshot row.
type GetBatteryAuditsQueryResponse struct {
	ID              kernel.UUID
	SerialNumber    string
	BatteryCapacity int
	CreatedAt       time.Time
}
