package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Every typed error in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidState      = errors.New("invalid state")
	ErrBatteryTooLow     = errors.New("battery too low")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrDuplicate         = errors.New("duplicate value")
	ErrStoreFailure      = errors.New("store failure")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its permitted range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the violated bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError indicates an operation attempted while a drone was
// not in the lifecycle state the operation requires. The message always
// names the current state so callers can see what blocked them.
type InvalidStateError struct {
	Current  string
	Required string
}

// NewInvalidStateError creates an InvalidStateError naming the current and required states.
func NewInvalidStateError(current, required string) *InvalidStateError {
	return &InvalidStateError{Current: current, Required: required}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: drone is currently %s, %s is required", ErrInvalidState, e.Current, e.Required)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// BatteryTooLowError indicates that a drone's battery is below the
// minimum charge required for loading operations.
type BatteryTooLowError struct {
	Battery   int
	Threshold int
}

// NewBatteryTooLowError creates a BatteryTooLowError with the observed charge and the minimum.
func NewBatteryTooLowError(battery, threshold int) *BatteryTooLowError {
	return &BatteryTooLowError{Battery: battery, Threshold: threshold}
}

func (e *BatteryTooLowError) Error() string {
	return fmt.Sprintf("%s: battery is %d%%, minimum is %d%%", ErrBatteryTooLow, e.Battery, e.Threshold)
}

func (e *BatteryTooLowError) Unwrap() error {
	return ErrBatteryTooLow
}

// CapacityExceededError indicates that a load would push a session's
// payload weight past the drone's weight limit. It carries the running
// total, the attempted addition, and the limit.
type CapacityExceededError struct {
	Current   float64
	Attempted float64
	Limit     float64
}

// NewCapacityExceededError creates a CapacityExceededError describing the rejected load.
func NewCapacityExceededError(current, attempted, limit float64) *CapacityExceededError {
	return &CapacityExceededError{Current: current, Attempted: attempted, Limit: limit}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: current=%v, attempt=%v, limit=%v", ErrCapacityExceeded, e.Current, e.Attempted, e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// DuplicateError indicates a uniqueness conflict, such as registering a
// drone with a serial number that already exists.
type DuplicateError struct {
	ParamName string
	Value     string
}

// NewDuplicateError creates a DuplicateError for the conflicting parameter and value.
func NewDuplicateError(paramName, value string) *DuplicateError {
	return &DuplicateError{ParamName: paramName, Value: value}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %s %s already exists", ErrDuplicate, e.ParamName, sanitize(e.Value))
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// StoreFailureError indicates that the persistence collaborator failed
// for a reason not covered by the other kinds. It is the only error in
// the taxonomy carrying an opaque underlying cause for logging.
type StoreFailureError struct {
	Op    string
	Cause error
}

// NewStoreFailureError creates a StoreFailureError for the named operation wrapping its cause.
func NewStoreFailureError(op string, cause error) *StoreFailureError {
	return &StoreFailureError{Op: op, Cause: cause}
}

func (e *StoreFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreFailure, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreFailure, e.Op)
}

func (e *StoreFailureError) Unwrap() error {
	return ErrStoreFailure
}
