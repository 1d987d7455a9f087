package ports

import (
	"context"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/medication"
)

// MedicationCatalog is the read side of the medication reference data.
// The catalog is seeded outside the dispatch core, so there is no Add.
type MedicationCatalog interface {
	// Get retrieves a medication by id. Returns an ObjectNotFoundError
	// when the medication does not exist.
	Get(ctx context.Context, id kernel.UUID) (*medication.Medication, error)
}
