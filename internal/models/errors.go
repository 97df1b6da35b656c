package models

// ValidationError marks caller faults: missing fields, unknown feedback
// actions. Transports report these verbatim with a 400; every other error is
// reported as a generic processing failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
