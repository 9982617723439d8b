package progression

import "fmt"

// ValidationError indicates a malformed request: missing subject, a value
// outside the question's scale, or an operation invalid in the current state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
