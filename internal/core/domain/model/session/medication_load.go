package session

import (
	"errors"
	"fmt"
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"
	"dronedispatch/internal/pkg/guard"
)

// ErrMedicationLoadIsNotConstructed is returned when using an improperly
// initialized MedicationLoad.
var ErrMedicationLoadIsNotConstructed = errors.New(
	"MedicationLoad must be created via NewMedicationLoad constructor",
)

// MedicationLoad is one accumulated load row within a delivery session.
// There is at most one MedicationLoad per (session, medication) pair:
// repeat loads of the same medication increment the quantity instead of
// creating a new row. The drone reference is denormalized so payload
// queries do not need to walk through the session.
type MedicationLoad struct {
	// id uniquely identifies the load row
	id kernel.UUID
	// droneID is the drone the medication sits on (denormalized)
	droneID kernel.UUID
	// medicationID references the catalog entry
	medicationID kernel.UUID
	// quantity is the accumulated unit count, always positive
	quantity int
	// loadedAt is when the medication was first loaded in this session
	loadedAt time.Time
	// guard ensures the load was properly constructed
	guard guard.ConstructorGuard
}

// NewMedicationLoad creates the first load row for a medication within
// a session. Quantity must be positive.
func NewMedicationLoad(
	id kernel.UUID,
	droneID kernel.UUID,
	medicationID kernel.UUID,
	quantity int,
	loadedAt time.Time,
) (*MedicationLoad, error) {
	l := &MedicationLoad{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDroneID(droneID),
		l.setMedicationID(medicationID),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	l.loadedAt = loadedAt
	return l, nil
}

// RestoreMedicationLoad reconstructs a load row from persistent storage.
func RestoreMedicationLoad(
	id kernel.UUID,
	droneID kernel.UUID,
	medicationID kernel.UUID,
	quantity int,
	loadedAt time.Time,
) (*MedicationLoad, error) {
	return NewMedicationLoad(id, droneID, medicationID, quantity, loadedAt)
}

// IsEqual compares two load rows by identity.
func (l *MedicationLoad) IsEqual(other *MedicationLoad) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// Validate checks if the MedicationLoad was properly constructed.
func (l *MedicationLoad) Validate() error {
	if l == nil {
		return ErrMedicationLoadIsNotConstructed
	}
	return l.guard.Validate(ErrMedicationLoadIsNotConstructed)
}

// ID returns the unique identifier of the load row.
func (l *MedicationLoad) ID() kernel.UUID {
	return l.id
}

// DroneID returns the drone the medication sits on.
func (l *MedicationLoad) DroneID() kernel.UUID {
	return l.droneID
}

// MedicationID returns the referenced catalog entry.
func (l *MedicationLoad) MedicationID() kernel.UUID {
	return l.medicationID
}

// Quantity returns the accumulated unit count.
func (l *MedicationLoad) Quantity() int {
	return l.quantity
}

// LoadedAt returns when the medication was first loaded in this session.
// Subsequent quantity increments do not move it.
func (l *MedicationLoad) LoadedAt() time.Time {
	return l.loadedAt
}

// addQuantity accumulates a repeat load of the same medication.
func (l *MedicationLoad) addQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	l.quantity += quantity
	return nil
}

func (l *MedicationLoad) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

func (l *MedicationLoad) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	l.droneID = droneID
	return nil
}

func (l *MedicationLoad) setMedicationID(medicationID kernel.UUID) error {
	if err := medicationID.Validate(); err != nil {
		return err
	}

	l.medicationID = medicationID
	return nil
}

func (l *MedicationLoad) setQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	l.quantity = quantity
	return nil
}

// validateQuantity rejects zero and negative quantities before any
// capacity arithmetic happens.
func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
