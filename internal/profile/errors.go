package profile

import "fmt"

// ValidationError reports a malformed Profile: missing required fields or
// values that fail constraint checks. Raised before any scoring work begins.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("profile validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("profile validation error: %s", e.Message)
}

// LoadError reports a profile file that could not be read or parsed.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load profile %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load profile %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
