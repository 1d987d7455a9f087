// Package audit provides the BatteryAudit entity: an append-only
// snapshot of a drone's battery percentage taken by the periodic
// sweep. Audit rows are created exclusively by the sweep and are never
// mutated or deleted.
package audit

import (
	"errors"
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"
	"dronedispatch/internal/pkg/guard"
)

// ErrBatteryAuditIsNotConstructed is returned when using an improperly
// initialized BatteryAudit.
var ErrBatteryAuditIsNotConstructed = errors.New(
	"BatteryAudit must be created via NewBatteryAudit constructor",
)

// BatteryAudit is one battery snapshot for one drone. The serial
// number is denormalized so audit history stays readable even if the
// fleet registry changes.
type BatteryAudit struct {
	id              kernel.UUID
	droneID         kernel.UUID
	serialNumber    string
	batteryCapacity int
	createdAt       time.Time
	guard           guard.ConstructorGuard
}

// NewBatteryAudit creates a snapshot row for the given drone with its
// battery percentage as observed at sweep time.
func NewBatteryAudit(
	id kernel.UUID,
	droneID kernel.UUID,
	serialNumber string,
	batteryCapacity int,
) (*BatteryAudit, error) {
	a := &BatteryAudit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDroneID(droneID),
		a.setSerialNumber(serialNumber),
		a.setBatteryCapacity(batteryCapacity),
	); err != nil {
		return nil, err
	}

	a.createdAt = time.Now().UTC()
	return a, nil
}

// RestoreBatteryAudit reconstructs a snapshot row from storage.
func RestoreBatteryAudit(
	id kernel.UUID,
	droneID kernel.UUID,
	serialNumber string,
	batteryCapacity int,
	createdAt time.Time,
) (*BatteryAudit, error) {
	a, err := NewBatteryAudit(id, droneID, serialNumber, batteryCapacity)
	if err != nil {
		return nil, err
	}

	a.createdAt = createdAt
	return a, nil
}

// Validate checks if the BatteryAudit was properly constructed.
func (a *BatteryAudit) Validate() error {
	if a == nil {
		return ErrBatteryAuditIsNotConstructed
	}
	return a.guard.Validate(ErrBatteryAuditIsNotConstructed)
}

// ID returns the unique identifier of the snapshot.
func (a *BatteryAudit) ID() kernel.UUID {
	return a.id
}

// DroneID returns the audited drone.
func (a *BatteryAudit) DroneID() kernel.UUID {
	return a.droneID
}

// SerialNumber returns the drone's serial at sweep time.
func (a *BatteryAudit) SerialNumber() string {
	return a.serialNumber
}

// BatteryCapacity returns the observed charge percentage.
func (a *BatteryAudit) BatteryCapacity() int {
	return a.batteryCapacity
}

// CreatedAt returns when the snapshot was taken.
func (a *BatteryAudit) CreatedAt() time.Time {
	return a.createdAt
}

func (a *BatteryAudit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *BatteryAudit) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	a.droneID = droneID
	return nil
}

func (a *BatteryAudit) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return errs.NewValueIsRequiredError("serial_number")
	}

	a.serialNumber = serialNumber
	return nil
}

func (a *BatteryAudit) setBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity < 0 || batteryCapacity > 100 {
		return errs.NewValueIsOutOfRangeError("battery_capacity", batteryCapacity, 0, 100)
	}

	a.batteryCapacity = batteryCapacity
	return nil
}
