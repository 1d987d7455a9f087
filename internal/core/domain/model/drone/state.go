package drone

import (
	"fmt"

	"dronedispatch/internal/pkg/errs"
)

// State represents the lifecycle state of a drone.
//
// State transitions:
//
//	Idle ──> Loading ──> Loaded ──> Delivering ──> Delivered ──> Returning ──> Idle
//
// Only the Idle -> Loading transition is implemented here (BeginLoading
// on the Drone aggregate); the remaining states exist as named values
// so persisted drones in any state round-trip, but their transition
// triggers are not part of this service.
type State int

const (
	// UnknownState represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	UnknownState State = iota

	// Idle is the initial state; the drone is available for acquisition.
	Idle

	// Loading means an open delivery session owns the drone and
	// medication may be loaded onto it.
	Loading

	// Loaded means loading finished and the drone awaits dispatch.
	Loaded

	// Delivering means the drone is en route to its destination.
	Delivering

	// Delivered means the payload was dropped off.
	Delivered

	// Returning means the drone is on its way back to base.
	Returning
)

// getStateStrings returns a map of State values to their string
// representations, including UnknownState for display purposes.
func getStateStrings() map[State]string {
	return map[State]string{
		UnknownState: "UNKNOWN",
		Idle:         "IDLE",
		Loading:      "LOADING",
		Loaded:       "LOADED",
		Delivering:   "DELIVERING",
		Delivered:    "DELIVERED",
		Returning:    "RETURNING",
	}
}

// getValidStateStrings returns a map of only valid State values.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // UnknownState is intentionally excluded as it's invalid
	return map[State]string{
		Idle:       "IDLE",
		Loading:    "LOADING",
		Loaded:     "LOADED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Returning:  "RETURNING",
	}
}

// StateFromString parses a persisted state string back into a State.
// Returns an error for strings that do not name a valid state.
func StateFromString(s string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause(
		"state is invalid",
		fmt.Errorf("%q is not a valid state", s),
	)
}

// Validate checks if the State value is valid.
// UnknownState (0) and out-of-range values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%d is not a valid state", s),
		)
	}
	return nil
}

// String returns the persisted name of the state, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// BeginLoading transitions the state to Loading.
//
// Valid transitions:
//   - Idle -> Loading
//
// Any other source state returns an InvalidStateError naming the
// current state, so callers see exactly what blocked the acquisition.
func (s State) BeginLoading() (State, error) {
	if s != Idle {
		return UnknownState, errs.NewInvalidStateError(s.String(), Idle.String())
	}
	return Loading, nil
}
