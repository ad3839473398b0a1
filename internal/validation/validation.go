// Package validation checks incoming API requests before they reach the
// service layer. Validators return an *Error carrying per-field messages.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a validation failure with one message per offending field.
type Error struct {
	Fields map[string]string
}

// Error formats the field messages in a stable order.
func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e.Fields[field])
	}
	return strings.Join(parts, "; ")
}
