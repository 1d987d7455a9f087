package commands

import (
	"context"
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/session"
	"dronedispatch/internal/pkg/locker"
)

// LoadMedicationResult describes the manifest row that resulted from a
// load, whether it was freshly created or incremented.
type LoadMedicationResult struct {
	LoadID       kernel.UUID
	DroneID      kernel.UUID
	MedicationID kernel.UUID
	Quantity     int
	LoadedAt     time.Time
}

// LoadMedicationCommandHandler orchestrates medication loading into a session.
// Serializes loads per session so the capacity check and the manifest write
// behave as one atomic step, then verifies the drone is still loadable and
// the payload stays within the drone's weight limit.
//
// Example:
//
//	handler := NewLoadMedicationCommandHandler(uowFactory, locker.NewKeyedLocker())
//	cmd, _ := NewLoadMedicationCommand(sessionID, medicationID, 2)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    log.Println("Payload would exceed the weight limit")
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No open session with that ID")
//	case err != nil:
//	    log.Printf("Loading failed: %v", err)
//	default:
//	    log.Printf("Manifest row %s now holds %d units", result.LoadID, result.Quantity)
//	}
type LoadMedicationCommandHandler struct {
	uowFactory LoadUoWFactory
	locker     *locker.KeyedLocker
}

// NewLoadMedicationCommandHandler creates a handler for loading operations.
// Requires a LoadUoWFactory for transactional persistence and a KeyedLocker
// shared by all loading handlers in the process.
func NewLoadMedicationCommandHandler(
	uowFactory LoadUoWFactory,
	keyedLocker *locker.KeyedLocker,
) LoadMedicationCommandHandler {
	return LoadMedicationCommandHandler{
		uowFactory: uowFactory,
		locker:     keyedLocker,
	}
}

// Handle processes the medication loading command.
// Resolves the open session, checks the drone's battery and state, computes
// the running payload weight and rejects loads that would exceed the limit.
// On success the manifest row is upserted: one row per medication per
// session, with repeated loads accumulating quantity.
func (h *LoadMedicationCommandHandler) Handle(
	ctx context.Context,
	cmd LoadMedicationCommand,
) (LoadMedicationResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoadMedicationResult{}, err
	}

	h.locker.Lock(cmd.SessionID().String())
	defer h.locker.Unlock(cmd.SessionID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoadMedicationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	sessionRepo := uow.SessionRepository()
	catalog := uow.MedicationCatalog()

	sessionEntity, err := sessionRepo.GetOpenByID(ctx, cmd.SessionID())
	if err != nil {
		return LoadMedicationResult{}, err
	}

	droneEntity, err := droneRepo.Get(ctx, sessionEntity.DroneID())
	if err != nil {
		return LoadMedicationResult{}, err
	}

	if err = droneEntity.EnsureLoadable(); err != nil {
		return LoadMedicationResult{}, err
	}

	medicationEntity, err := catalog.Get(ctx, cmd.MedicationID())
	if err != nil {
		return LoadMedicationResult{}, err
	}

	currentTotal, err := sessionRepo.GetTotalWeight(ctx, sessionEntity.ID())
	if err != nil {
		return LoadMedicationResult{}, err
	}

	if err = session.CheckCapacity(
		currentTotal,
		medicationEntity.Weight(),
		cmd.Quantity(),
		droneEntity.WeightLimit(),
	); err != nil {
		return LoadMedicationResult{}, err
	}

	load, err := sessionEntity.UpsertLoad(droneEntity.ID(), medicationEntity.ID(), cmd.Quantity())
	if err != nil {
		return LoadMedicationResult{}, err
	}

	if err = sessionRepo.Update(ctx, sessionEntity); err != nil {
		return LoadMedicationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoadMedicationResult{}, err
	}

	return LoadMedicationResult{
		LoadID:       load.ID(),
		DroneID:      load.DroneID(),
		MedicationID: load.MedicationID(),
		Quantity:     load.Quantity(),
		LoadedAt:     load.LoadedAt(),
	}, nil
}
