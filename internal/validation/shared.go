package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a validation failure of one or more input fields.
// Fields maps the input field name to a human-readable message and is
// returned to clients as the details of a 400 response.
type Error struct {
	Fields map[string]string
}

// Error joins the field messages as "field: message" pairs sorted by field.
func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
