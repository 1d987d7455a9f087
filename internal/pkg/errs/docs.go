// Package errs provides the closed set of error kinds used throughout
// the drone dispatch service. It implements a consistent pattern for
// error creation, formatting, and unwrapping.
//
// The taxonomy covers every failure a public operation may return:
//   - ObjectNotFoundError: a referenced drone/session/medication is absent
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     input validation failures
//   - InvalidStateError: an operation attempted outside the required
//     drone lifecycle state
//   - BatteryTooLowError: battery below the loading threshold
//   - CapacityExceededError: a load would exceed the drone's weight limit
//   - DuplicateError: uniqueness conflict (serial number)
//   - StoreFailureError: any other failure of the persistence layer
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrCapacityExceeded)
//   - A struct type carrying structured fields
//   - Constructor functions, with and without cause where applicable
//   - Error() for formatting and Unwrap() to the sentinel so callers
//     classify with errors.Is
//
// No operation in the service returns an unclassified error to its
// caller; adapters map these kinds to their own surface (the HTTP
// adapter maps them to status codes).
package errs
