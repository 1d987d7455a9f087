package errs_test

import (
	"errors"
	"testing"

	"dronedispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("droneId", "123")

		assert.Equal(t, "droneId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("droneId", "123", cause)

		assert.Equal(t, "droneId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: droneId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("serial_number")

		assert.Equal(t, "serial_number", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: serial_number", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("serial_number", cause)

		assert.Equal(t, "serial_number", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: serial_number (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("battery_capacity", 150, 0, 100)

		assert.Equal(t, "battery_capacity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 150 is battery_capacity, min value is 0, max value is 100",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight_limit", -5, 0, 500, cause)

		assert.Equal(t, "weight_limit", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 500, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is weight_limit, min value is 0, max value is 500 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("serial_number")

		assert.Equal(t, "serial_number", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: serial_number", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("serial_number", cause)

		assert.Equal(t, "serial_number", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: serial_number (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("LOADING", "IDLE")

	assert.Equal(t, "LOADING", err.Current)
	assert.Equal(t, "IDLE", err.Required)
	assert.Equal(t, "invalid state: drone is currently LOADING, IDLE is required", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestBatteryTooLowError(t *testing.T) {
	err := errs.NewBatteryTooLowError(24, 25)

	assert.Equal(t, 24, err.Battery)
	assert.Equal(t, 25, err.Threshold)
	assert.Equal(t, "battery too low: battery is 24%, minimum is 25%", err.Error())
	assert.Equal(t, errs.ErrBatteryTooLow, err.Unwrap())
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError(400, 200, 500)

	assert.InDelta(t, 400, err.Current, 0)
	assert.InDelta(t, 200, err.Attempted, 0)
	assert.InDelta(t, 500, err.Limit, 0)
	assert.Equal(t, "capacity exceeded: current=400, attempt=200, limit=500", err.Error())
	assert.Equal(t, errs.ErrCapacityExceeded, err.Unwrap())
}

func TestDuplicateError(t *testing.T) {
	err := errs.NewDuplicateError("serial_number", "DRN-001")

	assert.Equal(t, "serial_number", err.ParamName)
	assert.Equal(t, "DRN-001", err.Value)
	assert.Equal(t, "duplicate value: serial_number DRN-001 already exists", err.Error())
	assert.Equal(t, errs.ErrDuplicate, err.Unwrap())
}

func TestStoreFailureError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewStoreFailureError("create drone", cause)

		assert.Equal(t, "create drone", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "store failure: create drone (cause: connection reset)", err.Error())
		assert.Equal(t, errs.ErrStoreFailure, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStoreFailureError("update drone state", nil)
		assert.Equal(t, "store failure: update drone state", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrBatteryTooLow)
		require.Error(t, errs.ErrCapacityExceeded)
		require.Error(t, errs.ErrDuplicate)
		require.Error(t, errs.ErrStoreFailure)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "battery too low", errs.ErrBatteryTooLow.Error())
		assert.Equal(t, "capacity exceeded", errs.ErrCapacityExceeded.Error())
		assert.Equal(t, "duplicate value", errs.ErrDuplicate.Error())
		assert.Equal(t, "store failure", errs.ErrStoreFailure.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("droneId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("model"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("battery_capacity", 150, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("serial_number"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidStateError("LOADED", "IDLE"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewBatteryTooLowError(10, 25), errs.ErrBatteryTooLow)
		require.ErrorIs(t, errs.NewCapacityExceededError(500, 100, 500), errs.ErrCapacityExceeded)
		require.ErrorIs(t, errs.NewDuplicateError("serial_number", "DRN-001"), errs.ErrDuplicate)
		require.ErrorIs(t, errs.NewStoreFailureError("query", errors.New("timeout")), errs.ErrStoreFailure)
	})
}
