package commands

import (
	"errors"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/guard"
)

var (
	ErrLoadMedicationCommandIsNotConstructed = errors.New(
		"LoadMedicationCommand must be created via NewLoadMedicationCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// LoadMedicationCommand represents a request to load medication units into
// an open delivery session.
//
// Example:
//
//	cmd, err := NewLoadMedicationCommand(sessionID, medicationID, 3)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewLoadMedicationCommandHandler(uowFactory, locker)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to load medication: %w", err)
//	}
//	fmt.Printf("Loaded %d units, load row: %s", result.Quantity, result.LoadID)
type LoadMedicationCommand struct { //nolint:recvcheck //using for validation
	sessionID    kernel.UUID
	medicationID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewLoadMedicationCommand creates a command to load medication into a session.
// Validates that both IDs are constructed and the quantity is positive.
func NewLoadMedicationCommand(
	sessionID kernel.UUID,
	medicationID kernel.UUID,
	quantity int,
) (LoadMedicationCommand, error) {
	command := LoadMedicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setMedicationID(medicationID),
		command.setQuantity(quantity),
	); err != nil {
		return LoadMedicationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadMedicationCommandIsNotConstructed if validation fails.
func (c LoadMedicationCommand) Validate() error {
	return c.guard.Validate(ErrLoadMedicationCommandIsNotConstructed)
}

// SessionID returns the delivery session ID from the command.
func (c LoadMedicationCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// MedicationID returns the medication ID from the command.
func (c LoadMedicationCommand) MedicationID() kernel.UUID {
	return c.medicationID
}

// Quantity returns the number of units to load from the command.
func (c LoadMedicationCommand) Quantity() int {
	return c.quantity
}

func (c *LoadMedicationCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *LoadMedicationCommand) setMedicationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.medicationID = id
	return nil
}

func (c *LoadMedicationCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
