package commands

import (
	"context"
	"log/slog"

	"dronedispatch/internal/core/domain/model/audit"
	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"
)

// lowBatteryThreshold is the charge percentage below which a drone is
// flagged in the sweep log. Matches the loading eligibility threshold.
const lowBatteryThreshold = 25

// AuditBatteriesCommandHandler performs the periodic battery level sweep.
// Reads the whole fleet, records one audit row per drone, and flags drones
// whose charge fell below the loading threshold. A failure on one drone is
// logged and does not abort the rest of the sweep.
//
// Example:
//
//	handler := NewAuditBatteriesCommandHandler(uowFactory, slog.Default())
//	cmd := NewAuditBatteriesCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("battery sweep failed: %w", err)
//	}
type AuditBatteriesCommandHandler struct {
	uowFactory AuditUoWFactory
	logger     *slog.Logger
}

// NewAuditBatteriesCommandHandler creates a handler for battery sweeps.
// Requires an AuditUoWFactory for persistence and a logger for low battery
// alerts and per-drone failures.
func NewAuditBatteriesCommandHandler(
	uowFactory AuditUoWFactory,
	logger *slog.Logger,
) AuditBatteriesCommandHandler {
	return AuditBatteriesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the battery sweep command.
// Fetches the fleet in one transaction, then records each drone's snapshot
// in its own transaction so one failing drone cannot poison the others.
// Returns an error only when the fleet itself cannot be read.
func (h *AuditBatteriesCommandHandler) Handle(ctx context.Context, cmd AuditBatteriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	drones, err := h.fetchFleet(ctx)
	if err != nil {
		return err
	}

	for _, droneEntity := range drones {
		if auditErr := h.auditDrone(ctx, droneEntity); auditErr != nil {
			h.logger.Error("battery audit failed for drone",
				"droneID", droneEntity.ID().String(),
				"serialNumber", droneEntity.SerialNumber(),
				"error", auditErr)
			continue
		}

		if droneEntity.BatteryCapacity() < lowBatteryThreshold {
			h.logger.Warn("drone battery below loading threshold",
				"droneID", droneEntity.ID().String(),
				"serialNumber", droneEntity.SerialNumber(),
				"batteryCapacity", droneEntity.BatteryCapacity())
		}
	}

	return nil
}

func (h *AuditBatteriesCommandHandler) fetchFleet(ctx context.Context) ([]*drone.Drone, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drones, err := uow.DroneRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drones, nil
}

func (h *AuditBatteriesCommandHandler) auditDrone(ctx context.Context, droneEntity *drone.Drone) error {
	snapshot, err := audit.NewBatteryAudit(
		kernel.NewUUID(),
		droneEntity.ID(),
		droneEntity.SerialNumber(),
		droneEntity.BatteryCapacity(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BatteryAuditRepository().Add(ctx, snapshot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
