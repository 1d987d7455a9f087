package queries

import (
	"context"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadedMedicationsQueryHandler retrieves a drone's manifest from the database.
// Resolves the relevant session in SQL: the open one when present, the most
// recently created one otherwise.
//
// Example:
//
//	handler := NewGetLoadedMedicationsQueryHandler(db)
//	query, _ := NewGetLoadedMedicationsQuery(droneID)
//
//	manifest, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Unknown drone")
//	}
type GetLoadedMedicationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadedMedicationsQueryHandler creates a handler for manifest queries.
// Requires a GORM database connection for query execution.
func NewGetLoadedMedicationsQueryHandler(db *gorm.DB) GetLoadedMedicationsQueryHandler {
	return GetLoadedMedicationsQueryHandler{db: db}
}

// Handle executes the manifest query.
// Returns an ObjectNotFoundError for unknown drones. A drone that exists
// but has never been loaded yields an empty manifest, not an error.
func (h GetLoadedMedicationsQueryHandler) Handle(
	ctx context.Context,
	query GetLoadedMedicationsQuery,
) ([]GetLoadedMedicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var droneCount int64
	if err := h.db.WithContext(ctx).
		Table("drones").
		Where("id = ?", query.DroneID().String()).
		Count(&droneCount).Error; err != nil {
		return nil, err
	}
	if droneCount == 0 {
		return nil, errs.NewObjectNotFoundError("droneID", query.DroneID().String())
	}

	manifest := make([]GetLoadedMedicationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.code,
			m.weight,
			ml.quantity,
			ml.loaded_at
		FROM medication_loads ml
		JOIN medications m ON m.id = ml.medication_id
		WHERE ml.session_id = (
			SELECT id
			FROM delivery_sessions
			WHERE drone_id = ?
			ORDER BY (completed_at IS NULL) DESC, created_at DESC
			LIMIT 1
		)
		ORDER BY ml.loaded_at
	`, query.DroneID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetLoadedMedicationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Code,
			&row.Weight,
			&row.Quantity,
			&row.LoadedAt,
		)
		if err != nil {
			return nil, err
		}

		medicationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.MedicationID = medicationID

		manifest = append(manifest, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return manifest, nil
}
