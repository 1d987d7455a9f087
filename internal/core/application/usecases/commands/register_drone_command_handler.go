package commands

import (
	"context"
	"errors"

	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/pkg/errs"
)

// RegisterDroneCommandHandler handles the business logic for fleet registration.
// Creates and persists new drone entities with their payload and battery limits.
//
// Example:
//
//	handler := NewRegisterDroneCommandHandler(uowFactory)
//	cmd, _ := NewRegisterDroneCommand("DRN-042", drone.Heavyweight, 500, 80)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("drone registration failed: %w", err)
//	}
type RegisterDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewRegisterDroneCommandHandler creates a handler for drone registration.
// Requires a DroneUoWFactory for transactional persistence operations.
func NewRegisterDroneCommandHandler(uowFactory DroneUoWFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone registration command.
// Rejects serial numbers already present in the fleet, then creates a new
// drone entity in the idle state and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) error {
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

	_, err := droneRepo.GetBySerialNumber(ctx, cmd.SerialNumber())
	if err == nil {
		return errs.NewDuplicateError("serialNumber", cmd.SerialNumber())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	droneEntity, err := drone.NewDrone(
		cmd.DroneID(),
		cmd.SerialNumber(),
		cmd.Model(),
		cmd.WeightLimit(),
		cmd.BatteryCapacity(),
	)
	if err != nil {
		return err
	}

	if err = droneRepo.Add(ctx, droneEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
