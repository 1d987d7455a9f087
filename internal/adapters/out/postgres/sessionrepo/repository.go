package sessionrepo

import (
	"context"
	"errors"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/session"
	"dronedispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly opened session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.DeliverySession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("add session", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing session to the database, including upserted
// manifest rows.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *session.DeliverySession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return errs.NewStoreFailureError("update session", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetOpenByID retrieves the open session with the given id.
// A session that exists but is already completed is reported as not
// found, the same as one that never existed.
func (r *GormSessionRepository) GetOpenByID(ctx context.Context, id kernel.UUID) (*session.DeliverySession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).
		Preload("Loads").
		Where("id = ? AND completed_at IS NULL", id.Bytes()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByDroneID retrieves the drone's open session, if any.
func (r *GormSessionRepository) GetOpenByDroneID(ctx context.Context, droneID kernel.UUID) (*session.DeliverySession, error) {
	if err := droneID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).
		Preload("Loads").
		Where("drone_id = ? AND completed_at IS NULL", droneID.Bytes()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("droneID", droneID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByDroneID retrieves the drone's most recent session,
// preferring an open one over completed ones.
func (r *GormSessionRepository) GetLatestByDroneID(ctx context.Context, droneID kernel.UUID) (*session.DeliverySession, error) {
	if err := droneID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).
		Preload("Loads").
		Where("drone_id = ?", droneID.Bytes()).
		Order("(completed_at IS NULL) DESC, created_at DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("droneID", droneID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetTotalWeight computes the summed payload weight of the session's
// manifest against the medication catalog. The sum runs in SQL so the
// capacity check sees committed rows, not a stale aggregate snapshot.
func (r *GormSessionRepository) GetTotalWeight(ctx context.Context, sessionID kernel.UUID) (float64, error) {
	if err := sessionID.Validate(); err != nil {
		return 0, err
	}

	var total float64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(ml.quantity * m.weight), 0)
		FROM medication_loads ml
		JOIN medications m ON m.id = ml.medication_id
		WHERE ml.session_id = ?
	`, sessionID.Bytes()).Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}
