package commands

import (
	"context"

	"dronedispatch/internal/core/domain/model/session"
)

// AcquireDroneCommandHandler orchestrates the drone reservation process.
// Locks the drone row, verifies it is eligible for loading, opens a delivery
// session and flips the drone into the loading state in a single transaction.
//
// Example:
//
//	handler := NewAcquireDroneCommandHandler(uowFactory)
//	cmd, _ := NewAcquireDroneCommand(droneID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("Drone is not idle")
//	case errors.Is(err, errs.ErrBatteryTooLow):
//	    log.Println("Drone needs charging")
//	case err != nil:
//	    log.Printf("Acquisition failed: %v", err)
//	}
type AcquireDroneCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewAcquireDroneCommandHandler creates a handler for drone reservation operations.
// Requires a SessionUoWFactory for coordinating drone and session updates.
func NewAcquireDroneCommandHandler(uowFactory SessionUoWFactory) AcquireDroneCommandHandler {
	return AcquireDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone acquisition command.
// Reads the drone with a row lock so concurrent acquisitions serialize on the
// database, rejects drones that are not idle or below the charge threshold,
// then opens the session and updates the drone state atomically.
func (h *AcquireDroneCommandHandler) Handle(ctx context.Context, cmd AcquireDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	sessionRepo := uow.SessionRepository()

	droneEntity, err := droneRepo.GetForUpdate(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = droneEntity.BeginLoading(); err != nil {
		return err
	}

	sessionEntity, err := session.NewDeliverySession(cmd.SessionID(), droneEntity.ID())
	if err != nil {
		return err
	}

	if err = sessionRepo.Add(ctx, sessionEntity); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, droneEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
