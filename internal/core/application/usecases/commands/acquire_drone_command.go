package commands

import (
	"errors"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/guard"
)

var (
	ErrAcquireDroneCommandIsNotConstructed = errors.New(
		"AcquireDroneCommand must be created via NewAcquireDroneCommand constructor",
	)
)

// AcquireDroneCommand represents a request to reserve an idle drone for loading.
// Opens a delivery session and transitions the drone into the loading state.
// The session ID is generated up front so callers can reference it after Handle.
//
// Example:
//
//	cmd, err := NewAcquireDroneCommand(droneID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcquireDroneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to acquire drone: %w", err)
//	}
//	fmt.Printf("Opened session: %s", cmd.SessionID())
type AcquireDroneCommand struct { //nolint:recvcheck //using for validation
	droneID   kernel.UUID
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcquireDroneCommand creates a command to reserve a drone for loading.
// Automatically generates a unique ID for the delivery session.
func NewAcquireDroneCommand(droneID kernel.UUID) (AcquireDroneCommand, error) {
	command := AcquireDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setSessionID(kernel.NewUUID()),
	); err != nil {
		return AcquireDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcquireDroneCommandIsNotConstructed if validation fails.
func (c AcquireDroneCommand) Validate() error {
	return c.guard.Validate(ErrAcquireDroneCommandIsNotConstructed)
}

// DroneID returns the drone ID from the command.
func (c AcquireDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// SessionID returns the generated delivery session ID from the command.
func (c AcquireDroneCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *AcquireDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}

func (c *AcquireDroneCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}
