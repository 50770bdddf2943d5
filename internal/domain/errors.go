package domain

import "fmt"

// Error types for consistent error handling across the SDK.

// ValidationError indicates a field failed its constraint. It is always
// returned as a value from the schema layer, never panicked, so callers can
// inspect it and surface the offending field to their own users.
type ValidationError struct {
	Field      string // dotted path of the offending field, e.g. "vehicle.renavam"
	Constraint string // constraint that failed, e.g. "min", "oneof", "renavam"
	Actual     string // string form of the rejected value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on '%s': constraint '%s' rejected %q", e.Field, e.Constraint, e.Actual)
}

// IntegrationError indicates a 200 response from the remote API carried a
// payload that fails domain validation. The remote broke its contract, so
// there is no recovery path for the caller.
type IntegrationError struct {
	Operation string
	Err       error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration error [%s]: %v", e.Operation, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// APIError indicates the remote API answered with a non-200 status.
type APIError struct {
	Status int
	Detail string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%d] %s: %s", e.Status, e.Code, e.Detail)
}

// TransportError indicates the request never produced a response
// (connection refused, timeout, cancelled context).
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error [%s]: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UsageError indicates the SDK was used before it was ready, e.g. an
// operation requiring a credential before authentication completed.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}
