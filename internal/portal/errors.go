package portal

import "fmt"

// The four error classes every operation boundary reports. They are caught
// at the caller and turned into a single user-visible message; nothing is
// fatal and nothing retries automatically.

// ValidationError is a local, pre-network rejection of a form payload. The
// form stays editable; no request was issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthError means the backend rejected the credentials or the session is not
// authenticated. Message is the backend-supplied text, verbatim.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ServerError is a non-2xx response carrying a backend-supplied message.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// NetworkError means the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Network error. Please try again."
}

func (e *NetworkError) Unwrap() error { return e.Err }
