package validator

import (
	"fmt"
)

// Kind classifies a validation failure
type Kind string

const (
	KindMissingField  Kind = "missing_field"
	KindInvalidFormat Kind = "invalid_format"
	KindInvalidEmail  Kind = "invalid_email"
	KindOutOfRange    Kind = "out_of_range"
	KindPastDate      Kind = "past_date"
)

// Error is a validation failure tied to a specific request field
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newMissingField(field string) *Error {
	return &Error{
		Kind:    KindMissingField,
		Field:   field,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

func newInvalidFormat(field, message string) *Error {
	return &Error{
		Kind:    KindInvalidFormat,
		Field:   field,
		Message: message,
	}
}

func newInvalidEmail(field string) *Error {
	return &Error{
		Kind:    KindInvalidEmail,
		Field:   field,
		Message: "Invalid email format",
	}
}

func newOutOfRange(field, message string) *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Field:   field,
		Message: message,
	}
}

func newPastDate(field, message string) *Error {
	return &Error{
		Kind:    KindPastDate,
		Field:   field,
		Message: message,
	}
}
