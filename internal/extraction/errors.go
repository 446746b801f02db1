package extraction

import "fmt"

// ExtractionError reports that a posting could not be turned into a usable
// requirement set: empty or too-short input, or a backend classification
// response that failed validation. Recoverable by prompting for better input.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
