package medicationrepo

import (
	"context"
	"errors"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/medication"
	"dronedispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMedicationCatalog implements MedicationCatalog using GORM.
type GormMedicationCatalog struct {
	db *gorm.DB
}

// NewGormMedicationCatalog creates a new GORM medication catalog.
func NewGormMedicationCatalog(db *gorm.DB) *GormMedicationCatalog {
	return &GormMedicationCatalog{db: db}
}

// Get retrieves a medication by ID.
func (r *GormMedicationCatalog) Get(ctx context.Context, id kernel.UUID) (*medication.Medication, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medication", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Seed inserts the default catalog rows when the table is empty so a
// fresh deployment has medications to load. Existing rows are left
// untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&MedicationDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []MedicationDTO{
		{ID: uuid.New(), Name: "Paracetamol_500", Weight: 50, Code: "PARA_500"},
		{ID: uuid.New(), Name: "Amoxicillin_250", Weight: 75, Code: "AMOX_250"},
		{ID: uuid.New(), Name: "Ibuprofen_400", Weight: 60, Code: "IBU_400"},
		{ID: uuid.New(), Name: "Insulin-Kit", Weight: 120, Code: "INS_KIT_1"},
		{ID: uuid.New(), Name: "Adrenaline-Shot", Weight: 30, Code: "ADR_SHOT"},
	}

	return db.WithContext(ctx).Create(&defaults).Error
}
