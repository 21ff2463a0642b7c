package model

import "fmt"

// InvalidInputError reports a structurally malformed Table handed to the
// profiler. The loader output must be fixed; nothing retries it.
type InvalidInputError struct {
	Column string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("invalid table: %s", e.Reason)
	}
	return fmt.Sprintf("invalid table: column %q %s", e.Column, e.Reason)
}

// PreconditionError reports a malformed TableProfile handed to the detector.
// It signals a profiler bug rather than bad user data and is always fatal.
type PreconditionError struct {
	Column string
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("precondition violated: %s", e.Reason)
	}
	return fmt.Sprintf("precondition violated: column %q field %s %s", e.Column, e.Field, e.Reason)
}
