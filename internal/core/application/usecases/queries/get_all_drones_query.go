// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/guard"
)

var (
	ErrGetAllDronesQueryIsNotConstructed = errors.New(
		"GetAllDronesQuery must be created via NewGetAllDronesQuery constructor",
	)
)

// GetAllDronesQuery retrieves information about all drones in the fleet.
// Returns drone identities, capabilities and current dispatch state.
//
// Example:
//
//	query := NewGetAllDronesQuery()
//	handler := NewGetAllDronesQueryHandler(db)
//
//	drones, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drones: %w", err)
//	}
//
//	for _, d := range drones {
//	    fmt.Printf("Drone %s (%s) battery %d%%\n", d.SerialNumber, d.State, d.BatteryCapacity)
//	}
type GetAllDronesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDronesQuery creates a query to retrieve the whole fleet.
// This is a parameterless query that fetches the complete drone list.
func NewGetAllDronesQuery() GetAllDronesQuery {
	return GetAllDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllDronesQueryIsNotConstructed if validation fails.
func (q GetAllDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDronesQueryIsNotConstructed)
}

// GetAllDronesQueryResponse represents drone information in the read model.
type GetAllDronesQueryResponse struct {
	ID              kernel.UUID
	SerialNumber    string
	Model           string
	WeightLimit     float64
	BatteryCapacity int
	State           string
}
