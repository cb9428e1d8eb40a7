package providers

import "fmt"

type unavailableError struct {
	endpoint string
	cause    error
}

func (e *unavailableError) Error() string {
	return fmt.Sprintf("inference service unavailable at %s: %v", e.endpoint, e.cause)
}

func (e *unavailableError) Unwrap() error { return e.cause }

type timeoutError struct {
	cause error
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("inference request timed out: %v", e.cause)
}

func (e *timeoutError) Unwrap() error { return e.cause }

// IsUnavailable checks if an error means the local service could not be reached.
func IsUnavailable(err error) bool {
	_, ok := err.(*unavailableError)
	return ok
}

// IsTimeout checks if an error means the inference call timed out.
func IsTimeout(err error) bool {
	_, ok := err.(*timeoutError)
	return ok
}
