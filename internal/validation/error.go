package validation

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to its failure message.
type FieldErrors map[string]string

// Error is a structured validation failure. It is returned before any store
// mutation is attempted; there is no partial application.
type Error struct {
	Fields FieldErrors
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds an Error for a single field.
func NewError(field, message string) *Error {
	return &Error{Fields: FieldErrors{field: message}}
}
