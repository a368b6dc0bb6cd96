package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
)

// Diagnostics represents a list of resolution or parser errors.
// It accumulates every error found during a compilation run instead of
// stopping at the first one, so all problems surface at once.
type Diagnostics struct {
	errors []SchemaError
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors: make([]SchemaError, 0),
	}
}

// Errors returns all errors in the collection.
func (d *Diagnostics) Errors() []SchemaError {
	return d.errors
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err SchemaError) {
	d.errors = append(d.errors, err)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	switch len(d.errors) {
	case 0:
		return nil
	case 1:
		return errors.New("schema has 1 error")
	default:
		return fmt.Errorf("schema has %d errors", len(d.errors))
	}
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, schemaString string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		_ = prettyPrint(&buf, fileName, schemaString, err.Span(), err.Message())
	}
	return buf.String()
}

// FromError creates a Diagnostics from a single error.
func FromError(err SchemaError) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}
