package linkedin

import "fmt"

// AuthError is returned when the network rejects the credentials or the session.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("linkedin auth error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("linkedin auth error: %s", e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// ProfileNotFoundError is returned when no profile exists for a handle.
type ProfileNotFoundError struct {
	Handle string
	Cause  error
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("linkedin profile not found: %q", e.Handle)
}

func (e *ProfileNotFoundError) Unwrap() error {
	return e.Cause
}
