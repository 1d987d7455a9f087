package commands

import (
	"errors"

	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/guard"
)

var (
	ErrRegisterDroneCommandIsNotConstructed = errors.New(
		"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor",
	)
	ErrSerialNumberIsRequired = errors.New("serial number is required")
	ErrWeightLimitIsInvalid   = errors.New("weight limit must be greater than 0")
	ErrBatteryIsInvalid       = errors.New("battery capacity must be between 0 and 100")
)

// RegisterDroneCommand represents a request to register a new drone in the fleet.
// Encapsulates all data needed to create a drone entity ready for dispatch.
//
// Example:
//
//	cmd, err := NewRegisterDroneCommand("DRN-001", drone.Middleweight, 250, 100)
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//
//	handler := NewRegisterDroneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register drone: %w", err)
//	}
//	fmt.Printf("Registered drone with ID: %s", cmd.DroneID())
type RegisterDroneCommand struct { //nolint:recvcheck //using for validation
	droneID         kernel.UUID
	serialNumber    string
	model           drone.Model
	weightLimit     float64
	batteryCapacity int

	guard guard.ConstructorGuard
}

// NewRegisterDroneCommand creates a command to register a new drone.
// Automatically generates a unique ID for the drone.
// Validates that the serial number is not empty, the model is known,
// the weight limit is positive, and the battery level is a percentage.
func NewRegisterDroneCommand(
	serialNumber string,
	model drone.Model,
	weightLimit float64,
	batteryCapacity int,
) (RegisterDroneCommand, error) {
	command := RegisterDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(kernel.NewUUID()),
		command.setSerialNumber(serialNumber),
		command.setModel(model),
		command.setWeightLimit(weightLimit),
		command.setBatteryCapacity(batteryCapacity),
	); err != nil {
		return RegisterDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDroneCommandIsNotConstructed if validation fails.
func (c RegisterDroneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDroneCommandIsNotConstructed)
}

// DroneID returns the generated drone ID from the command.
func (c RegisterDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// SerialNumber returns the drone serial number from the command.
func (c RegisterDroneCommand) SerialNumber() string {
	return c.serialNumber
}

// Model returns the drone model from the command.
func (c RegisterDroneCommand) Model() drone.Model {
	return c.model
}

// WeightLimit returns the payload weight limit in grams from the command.
func (c RegisterDroneCommand) WeightLimit() float64 {
	return c.weightLimit
}

// BatteryCapacity returns the battery level percentage from the command.
func (c RegisterDroneCommand) BatteryCapacity() int {
	return c.batteryCapacity
}

func (c *RegisterDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}

func (c *RegisterDroneCommand) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return ErrSerialNumberIsRequired
	}

	c.serialNumber = serialNumber
	return nil
}

func (c *RegisterDroneCommand) setModel(model drone.Model) error {
	if err := model.Validate(); err != nil {
		return err
	}

	c.model = model
	return nil
}

func (c *RegisterDroneCommand) setWeightLimit(weightLimit float64) error {
	if weightLimit <= 0 {
		return ErrWeightLimitIsInvalid
	}

	c.weightLimit = weightLimit
	return nil
}

func (c *RegisterDroneCommand) setBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity < 0 || batteryCapacity > 100 {
		return ErrBatteryIsInvalid
	}

	c.batteryCapacity = batteryCapacity
	return nil
}
