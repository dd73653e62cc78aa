package apperrors

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("context: %w", Err...) so
// callers can classify failures with errors.Is at the HTTP boundary.
var (
	// ErrConfiguration signals missing or invalid process configuration,
	// e.g. an absent LLM API key.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation signals a request body that fails schema validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound signals a referenced id or document that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrParse signals LLM output that is not the expected JSON shape.
	ErrParse = errors.New("parse error")

	// ErrProvider signals a failed LLM or network call.
	ErrProvider = errors.New("provider error")

	// ErrPersistence signals a file read/write failure.
	ErrPersistence = errors.New("persistence error")
)

// IsClientError reports whether the error is caused by invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}

// IsNotFound reports whether the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
