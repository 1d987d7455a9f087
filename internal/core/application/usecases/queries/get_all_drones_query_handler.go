package queries

import (
	"context"

	"dronedispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDronesQueryHandler retrieves the fleet from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllDronesQueryHandler(db)
//	query := NewGetAllDronesQuery()
//
//	drones, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get drones: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Fleet size: %d\n", len(drones))
type GetAllDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDronesQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllDronesQueryHandler(db *gorm.DB) GetAllDronesQueryHandler {
	return GetAllDronesQueryHandler{db: db}
}

// Handle executes the query to retrieve all drones.
// Returns a slice of drone read models sorted by serial number.
func (h GetAllDronesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDronesQuery,
) ([]GetAllDronesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones := make([]GetAllDronesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			serial_number,
			model,
			weight_limit,
			battery_capacity,
			state
		FROM drones
		ORDER BY serial_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var droneRow GetAllDronesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&droneRow.SerialNumber,
			&droneRow.Model,
			&droneRow.WeightLimit,
			&droneRow.BatteryCapacity,
			&droneRow.State,
		)
		if err != nil {
			return nil, err
		}

		droneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		droneRow.ID = droneID

		drones = append(drones, droneRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
