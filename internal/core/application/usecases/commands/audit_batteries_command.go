package commands

import (
	"errors"

	"dronedispatch/internal/pkg/guard"
)

var (
	ErrAuditBatteriesCommandIsNotConstructed = errors.New(
		"AuditBatteriesCommand must be created via NewAuditBatteriesCommand constructor",
	)
)

// AuditBatteriesCommand triggers a battery snapshot sweep across the fleet.
// This batch operation records the current battery level of every drone.
//
// Example:
//
//	cmd := NewAuditBatteriesCommand()
//	handler := NewAuditBatteriesCommandHandler(uowFactory, logger)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Battery sweep failed: %v", err)
//	}
type AuditBatteriesCommand struct {
	guard guard.ConstructorGuard
}

// NewAuditBatteriesCommand creates a command to trigger a battery sweep.
// This is a parameterless command that processes the whole fleet.
func NewAuditBatteriesCommand() AuditBatteriesCommand {
	command := AuditBatteriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAuditBatteriesCommandIsNotConstructed if validation fails.
func (c *AuditBatteriesCommand) Validate() error {
	return c.guard.Validate(ErrAuditBatteriesCommandIsNotConstructed)
}
