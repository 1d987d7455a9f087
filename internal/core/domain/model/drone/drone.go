package drone

import (
	"errors"
	"fmt"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"
	"dronedispatch/internal/pkg/guard"
)

const (
	// maxSerialNumberLength caps the serial number at registration.
	maxSerialNumberLength = 100
	// maxWeightLimitGrams is the heaviest payload any airframe carries.
	maxWeightLimitGrams = 500.0
	// minLoadingBattery is the charge percentage below which a drone
	// may neither be acquired nor loaded.
	minLoadingBattery = 25
)

// Domain errors for drone operations.
var (
	// ErrSerialNumberIsRequired is returned when registering a drone without a serial number.
	ErrSerialNumberIsRequired = errs.NewValueIsRequiredError("serial_number")
	// ErrDroneIsNotConstructed is returned when using an improperly initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
)

// Drone represents a delivery drone in the fleet. It is the long-lived
// aggregate root of the dispatch domain: delivery sessions, medication
// loads, and battery audits are all scoped to a drone.
//
// Key responsibilities:
//   - Holding drone identity and static attributes (serial, model, weight limit)
//   - Enforcing the lifecycle state machine (only Idle -> Loading here)
//   - Guarding the battery threshold for loading operations
//
// Business rules:
//   - Serial number is unique fleet-wide (enforced by the store), non-empty,
//     at most 100 characters
//   - Weight limit is positive and at most 500 grams
//   - Battery capacity is a percentage in [0, 100]
//   - A drone registers in Idle state
//   - Acquisition and loading require battery capacity of at least 25%
type Drone struct {
	// id uniquely identifies the drone
	id kernel.UUID
	// serialNumber is the unique manufacturer serial
	serialNumber string
	// model is the airframe class
	model Model
	// weightLimit is the payload ceiling in grams
	weightLimit float64
	// batteryCapacity is the last known charge percentage
	batteryCapacity int
	// state is the current lifecycle state
	state State
	// guard ensures the drone was properly constructed
	guard guard.ConstructorGuard
}

// NewDrone creates a freshly registered Drone in Idle state.
// This is the only way to create a valid new Drone instance; all
// parameters are validated and errors are aggregated.
func NewDrone(
	id kernel.UUID,
	serialNumber string,
	model Model,
	weightLimit float64,
	batteryCapacity int,
) (*Drone, error) {
	d := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.setWeightLimit(weightLimit),
		d.setBatteryCapacity(batteryCapacity),
		d.setState(Idle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone reconstructs a Drone aggregate from persistent storage,
// preserving whatever lifecycle state and battery reading were saved.
// The restored drone behaves identically to one created through
// NewDrone and subsequent domain operations.
func RestoreDrone(
	id kernel.UUID,
	serialNumber string,
	model Model,
	weightLimit float64,
	batteryCapacity int,
	state State,
) (*Drone, error) {
	d := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.setWeightLimit(weightLimit),
		d.setBatteryCapacity(batteryCapacity),
		d.setState(state),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two drones by identity. Two drones are equal when
// they carry the same ID regardless of other attributes.
func (d *Drone) IsEqual(other *Drone) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Drone was properly constructed via NewDrone
// or RestoreDrone. The zero value fails this validation.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// ID returns the unique identifier of the drone.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// SerialNumber returns the unique manufacturer serial.
func (d *Drone) SerialNumber() string {
	return d.serialNumber
}

// Model returns the airframe class of the drone.
func (d *Drone) Model() Model {
	return d.model
}

// WeightLimit returns the payload ceiling in grams. It is the hard cap
// on summed (unit weight x quantity) across all loads in a session.
func (d *Drone) WeightLimit() float64 {
	return d.weightLimit
}

// BatteryCapacity returns the last known charge percentage. The value
// is mutated by an external charging process, not by this core; here
// it is only read and audited.
func (d *Drone) BatteryCapacity() int {
	return d.batteryCapacity
}

// State returns the current lifecycle state.
func (d *Drone) State() State {
	return d.state
}

// BeginLoading transitions the drone from Idle to Loading, opening it
// up for medication loads. It enforces, in order:
//  1. the drone must currently be Idle (InvalidStateError naming the
//     actual state otherwise)
//  2. the battery must be at or above the loading threshold
//     (BatteryTooLowError otherwise)
//
// On success the drone's state is Loading. The caller is responsible
// for creating the owning session and persisting both atomically.
func (d *Drone) BeginLoading() error {
	next, err := d.state.BeginLoading()
	if err != nil {
		return err
	}

	if d.batteryCapacity < minLoadingBattery {
		return errs.NewBatteryTooLowError(d.batteryCapacity, minLoadingBattery)
	}

	d.state = next
	return nil
}

// EnsureLoadable verifies the drone can accept a medication load right
// now. Checked on every load because the battery may have degraded
// since acquisition:
//  1. battery at or above the loading threshold (BatteryTooLowError)
//  2. state is Loading (InvalidStateError naming the actual state)
//
// No state is mutated.
func (d *Drone) EnsureLoadable() error {
	if d.batteryCapacity < minLoadingBattery {
		return errs.NewBatteryTooLowError(d.batteryCapacity, minLoadingBattery)
	}

	if d.state != Loading {
		return errs.NewInvalidStateError(d.state.String(), Loading.String())
	}

	return nil
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Drone) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return ErrSerialNumberIsRequired
	}
	if len(serialNumber) > maxSerialNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"serial_number",
			fmt.Errorf("length %d exceeds maximum of %d", len(serialNumber), maxSerialNumberLength),
		)
	}

	d.serialNumber = serialNumber
	return nil
}

func (d *Drone) setModel(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}

	d.model = model
	return nil
}

func (d *Drone) setWeightLimit(weightLimit float64) error {
	if weightLimit <= 0 || weightLimit > maxWeightLimitGrams {
		return errs.NewValueIsOutOfRangeError("weight_limit", weightLimit, 0, maxWeightLimitGrams)
	}

	d.weightLimit = weightLimit
	return nil
}

func (d *Drone) setBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity < 0 || batteryCapacity > 100 {
		return errs.NewValueIsOutOfRangeError("battery_capacity", batteryCapacity, 0, 100)
	}

	d.batteryCapacity = batteryCapacity
	return nil
}

func (d *Drone) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	d.state = state
	return nil
}
