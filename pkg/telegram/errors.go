package telegram

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches every mapping error via errors.Is.
	ErrSchema = errors.New("telegram schema error")
	// ErrMalformedDocument is returned when the input is not valid JSON.
	ErrMalformedDocument = fmt.Errorf("%w: malformed document", ErrSchema)
	// ErrUnknownEntity is returned for entity or method names with no mapping.
	ErrUnknownEntity = fmt.Errorf("%w: unknown entity", ErrSchema)
)

// TypeMismatch reports a wire value whose JSON type disagrees with the
// declared field type.
type TypeMismatch struct {
	Entity   string
	Field    string
	Expected string
	Actual   string
	Offset   int64
}

func (e *TypeMismatch) Error() string {
	where := e.Entity
	if e.Field != "" {
		where += "." + e.Field
	}
	return fmt.Sprintf("telegram: %s: expected %s, got %s", where, e.Expected, e.Actual)
}

func (e *TypeMismatch) Is(target error) bool { return target == ErrSchema }

// SchemaViolation reports a required field that is absent.
type SchemaViolation struct {
	Entity string
	Field  string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("telegram: %s: required field %q is missing", e.Entity, e.Field)
}

func (e *SchemaViolation) Is(target error) bool { return target == ErrSchema }

// UnknownEnumValue reports a token outside an enumeration's documented set.
// Only returned under PolicyStrict.
type UnknownEnumValue struct {
	Kind  string
	Token string
	Field string
}

func (e *UnknownEnumValue) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("telegram: %s: unknown %s value %q", e.Field, e.Kind, e.Token)
	}
	return fmt.Sprintf("telegram: unknown %s value %q", e.Kind, e.Token)
}

func (e *UnknownEnumValue) Is(target error) bool { return target == ErrSchema }

// APIError is the error half of a response envelope with ok=false.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}
