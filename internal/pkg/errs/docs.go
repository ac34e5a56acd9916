// Package errs provides standardized error types for the garment order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsOutOfRangeError: For numeric range violations
//
// On top of those, it defines the three order-lifecycle error kinds that the
// presentation layer translates into user-facing failures:
//   - InvalidTransitionError: A status transition attempted from a state that
//     does not permit it (e.g. approving an already-approved order)
//   - InvalidOrderStateError: An operation requiring a different order status
//     (e.g. a tracking update on a non-approved order)
//   - InvalidCheckpointError: A tracking status outside the fixed production sequence
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All error kinds are caller-visible and recoverable; none of them is ever
// treated as fatal by the core. They carry enough context (order id, attempted
// operation, current state) to explain a rejection without consulting logs.
package errs
