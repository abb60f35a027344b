package jsonschema

import (
	"fmt"
	"strings"
)

// Issue is one schema rule a document breaks.
type Issue struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Description string `json:"description"`

	cause error
}

// Error lists every issue found in a document. Issues of type required and
// invalid_type unwrap to *telegram.SchemaViolation and *telegram.TypeMismatch.
type Error struct {
	SchemaID string
	Issues   []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field == "" {
			parts = append(parts, is.Description)
			continue
		}
		parts = append(parts, is.Field+": "+is.Description)
	}
	return fmt.Sprintf("jsonschema: %s: %s", e.SchemaID, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() []error {
	var errs []error
	for _, is := range e.Issues {
		if is.cause != nil {
			errs = append(errs, is.cause)
		}
	}
	return errs
}
