package session

import (
	"errors"
	"time"

	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"
	"dronedispatch/internal/pkg/guard"
)

// Domain errors for delivery session operations.
var (
	// ErrSessionIsNotConstructed is returned when using an improperly initialized DeliverySession.
	ErrSessionIsNotConstructed = errors.New("DeliverySession must be created via NewDeliverySession constructor")
	// ErrSessionAlreadyCompleted is returned when completing a session twice.
	ErrSessionAlreadyCompleted = errors.New("delivery session is already completed")
)

// DeliverySession is the unit of "loading in progress": the scoped,
// single-drone window during which medication may be loaded. A drone
// has many sessions over time but at most one open session (one with
// no completion timestamp) at any moment.
//
// The session exclusively owns its MedicationLoad rows; they are
// created and accumulated only through UpsertLoad and are deleted with
// the session.
type DeliverySession struct {
	// id uniquely identifies the session
	id kernel.UUID
	// droneID is the drone this session exclusively owns while open
	droneID kernel.UUID
	// createdAt is when the session was opened
	createdAt time.Time
	// completedAt is nil while the loading window is open
	completedAt *time.Time
	// loads are the accumulated medication loads, one per medication
	loads []*MedicationLoad
	// guard ensures the session was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliverySession opens a new session bound to the given drone.
// Eligibility of the drone (state, battery) is the loading engine's
// responsibility and is not re-validated here, so the invariant
// enforcement stays centralized in one place.
func NewDeliverySession(id kernel.UUID, droneID kernel.UUID) (*DeliverySession, error) {
	s := &DeliverySession{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDroneID(droneID),
	); err != nil {
		return nil, err
	}

	s.createdAt = time.Now().UTC()
	return s, nil
}

// RestoreDeliverySession reconstructs a session aggregate from
// persistent storage, including its accumulated loads and completion
// timestamp.
func RestoreDeliverySession(
	id kernel.UUID,
	droneID kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
	loads []*MedicationLoad,
) (*DeliverySession, error) {
	s := &DeliverySession{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDroneID(droneID),
		s.setLoads(loads),
	); err != nil {
		return nil, err
	}

	s.createdAt = createdAt
	s.completedAt = completedAt
	return s, nil
}

// IsEqual compares two sessions by identity.
func (s *DeliverySession) IsEqual(other *DeliverySession) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// Validate checks if the DeliverySession was properly constructed.
func (s *DeliverySession) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the unique identifier of the session.
func (s *DeliverySession) ID() kernel.UUID {
	return s.id
}

// DroneID returns the drone this session is bound to.
func (s *DeliverySession) DroneID() kernel.UUID {
	return s.droneID
}

// CreatedAt returns when the session was opened.
func (s *DeliverySession) CreatedAt() time.Time {
	return s.createdAt
}

// CompletedAt returns the completion timestamp, or nil while the
// loading window is open.
func (s *DeliverySession) CompletedAt() *time.Time {
	return s.completedAt
}

// IsOpen reports whether the session can still receive loads.
func (s *DeliverySession) IsOpen() bool {
	return s.completedAt == nil
}

// Loads returns the accumulated medication loads. The returned slice
// is a copy to prevent external modification.
func (s *DeliverySession) Loads() []*MedicationLoad {
	out := make([]*MedicationLoad, len(s.loads))
	copy(out, s.loads)
	return out
}

// Complete closes the loading window. A completed session can never
// receive loads again; there is no reopening.
func (s *DeliverySession) Complete() error {
	if !s.IsOpen() {
		return ErrSessionAlreadyCompleted
	}

	now := time.Now().UTC()
	s.completedAt = &now
	return nil
}

// UpsertLoad accumulates a load of the given medication into the
// session: if a row for the medication already exists its quantity is
// incremented, otherwise a new row is created with a fresh identity.
// Returns the resulting row either way.
//
// Quantity must be positive; a session that is no longer open rejects
// the load. Capacity is NOT checked here — callers run CheckCapacity
// first, inside the per-session critical section, so the check and the
// write are atomic relative to other loads on this session.
func (s *DeliverySession) UpsertLoad(
	droneID kernel.UUID,
	medicationID kernel.UUID,
	quantity int,
) (*MedicationLoad, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	if !s.IsOpen() {
		return nil, errs.NewObjectNotFoundError("session", s.id.String())
	}

	for _, load := range s.loads {
		if load.MedicationID().IsEqual(medicationID) {
			if err := load.addQuantity(quantity); err != nil {
				return nil, err
			}
			return load, nil
		}
	}

	load, err := NewMedicationLoad(kernel.NewUUID(), droneID, medicationID, quantity, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.loads = append(s.loads, load)
	return load, nil
}

// CheckCapacity validates that adding quantity units of a medication
// with the given unit weight keeps the payload within the weight
// limit. currentTotal is the summed (unit weight x quantity) of the
// session's existing loads. On rejection the error carries the running
// total, the attempted addition, and the limit.
func CheckCapacity(currentTotal, unitWeight float64, quantity int, weightLimit float64) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	attempted := unitWeight * float64(quantity)
	if currentTotal+attempted > weightLimit {
		return errs.NewCapacityExceededError(currentTotal, attempted, weightLimit)
	}

	return nil
}

func (s *DeliverySession) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *DeliverySession) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	s.droneID = droneID
	return nil
}

func (s *DeliverySession) setLoads(loads []*MedicationLoad) error {
	for _, load := range loads {
		if err := load.Validate(); err != nil {
			return err
		}
	}

	s.loads = make([]*MedicationLoad, len(loads))
	copy(s.loads, loads)
	return nil
}
