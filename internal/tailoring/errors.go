package tailoring

import "fmt"

// GenerationError reports a generation-backend failure: call error,
// timeout/cancellation, or unusable output. The orchestrator surfaces it
// to the caller without retrying; retry policy belongs to the
// backend-owning collaborator.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
