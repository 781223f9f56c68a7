// Package errs provides standardized error types for the fleet manager
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - VersionConflictError: an optimistic-concurrency write lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - An Error() method for formatting the error message
//   - An Unwrap() method so errors.Is can match the sentinel
//
// Handlers classify errors with errors.Is against the sentinels; the HTTP
// adapter translates them into status codes at the boundary.
package errs
