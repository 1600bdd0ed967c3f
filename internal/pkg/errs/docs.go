// Package errs provides standardized error types for the order bot.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of error types:
//   - Validation errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError
//   - Collaborator errors: TransportError (network, timeout, 5xx from the commerce
//     backend, geocoder or messenger), DataError (an answer is missing an expected
//     field), PaymentValidationError (an invoice payload that this bot never issued)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrTransport)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is classifies the failure
//
// Adapters convert every failure into one of these kinds at their boundary, so
// callers never have to inspect raw net/http or gorm errors.
package errs
