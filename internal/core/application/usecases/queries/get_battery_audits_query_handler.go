package queries

import (
	"context"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// auditHistoryLimit caps how many snapshot rows a history query returns.
const auditHistoryLimit = 100

// GetBatteryAuditsQueryHandler retrieves battery snapshot history from the database.
type GetBatteryAuditsQueryHandler struct {
	db *gorm.DB
}

// NewGetBatteryAuditsQueryHandler creates a handler for audit history queries.
// Requires a GORM database connection for query execution.
func NewGetBatteryAuditsQueryHandler(db *gorm.DB) GetBatteryAuditsQueryHandler {
	return GetBatteryAuditsQueryHandler{db: db}
}

// Handle executes the audit history query.
// Returns an ObjectNotFoundError for unknown drones; snapshots come back
// newest first, at most auditHistoryLimit of them.
func (h GetBatteryAuditsQueryHandler) Handle(
	ctx context.Context,
	query GetBatteryAuditsQuery,
) ([]GetBatteryAuditsQueryResponse, error) {
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

	audits := make([]GetBatteryAuditsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			serial_number,
			battery_capacity,
			created_at
		FROM battery_audits
		WHERE drone_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.DroneID().String(), auditHistoryLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetBatteryAuditsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.SerialNumber,
			&row.BatteryCapacity,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		auditID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = auditID

		audits = append(audits, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return audits, nil
}
