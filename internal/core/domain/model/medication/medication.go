// Package medication provides the read-only catalog entity resolved by
// the loading engine. The catalog is maintained by an external system;
// this core only looks medications up by id to price loads by weight
// and to enrich manifests.
package medication

import (
	"errors"
	"fmt"
	"regexp"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"
	"dronedispatch/internal/pkg/guard"
)

// ErrMedicationIsNotConstructed is returned when using an improperly
// initialized Medication.
var ErrMedicationIsNotConstructed = errors.New(
	"Medication must be created via RestoreMedication constructor",
)

// Catalog format constraints, matching the upstream medication system.
var (
	// namepattern allows letters, numbers, hyphen, and underscore.
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// codePattern allows upper case letters, underscore, and numbers.
	codePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// Medication is a catalog entry: name, unique code, and the unit
// weight in grams the loading engine multiplies by quantity. Entries
// are never created or mutated by this service.
type Medication struct {
	// id uniquely identifies the catalog entry
	id kernel.UUID
	// name is the display name
	name string
	// weight is the unit weight in grams
	weight float64
	// code is the unique catalog code
	code string
	// guard ensures the medication was properly constructed
	guard guard.ConstructorGuard
}

// RestoreMedication reconstructs a catalog entry from the store. This
// is the only constructor: medications exist here solely as read
// models of the external catalog.
func RestoreMedication(id kernel.UUID, name string, weight float64, code string) (*Medication, error) {
	m := &Medication{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setWeight(weight),
		m.setCode(code),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// IsEqual compares two medications by identity.
func (m *Medication) IsEqual(other *Medication) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// Validate checks if the Medication was properly constructed.
func (m *Medication) Validate() error {
	if m == nil {
		return ErrMedicationIsNotConstructed
	}
	return m.guard.Validate(ErrMedicationIsNotConstructed)
}

// ID returns the unique identifier of the catalog entry.
func (m *Medication) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *Medication) Name() string {
	return m.name
}

// Weight returns the unit weight in grams.
func (m *Medication) Weight() float64 {
	return m.weight
}

// Code returns the unique catalog code.
func (m *Medication) Code() string {
	return m.code
}

func (m *Medication) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.id = id
	return nil
}

func (m *Medication) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("%q may only contain letters, numbers, '-' and '_'", name),
		)
	}

	m.name = name
	return nil
}

func (m *Medication) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%v is not greater than 0", weight),
		)
	}

	m.weight = weight
	return nil
}

func (m *Medication) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("%q may only contain upper case letters, numbers and '_'", code),
		)
	}

	m.code = code
	return nil
}
