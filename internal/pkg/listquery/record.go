// Package listquery implements the search, facet filter, pagination and
// summary pipeline shared by every list endpoint.
//
// All functions are pure: they never mutate their input, perform no I/O and
// return freshly allocated results, so they are safe to call concurrently and
// on every request.
package listquery

import "strings"

// Record is the read-only view of an item the engine filters over.
type Record interface {
	// RecordID returns the stable identifier of the record.
	RecordID() string
	// Field returns the textual value of a named field. The boolean is false
	// when the record has no such field.
	Field(name string) (string, bool)
}

// Fields is a ready-made Record backed by a map, handy for ad-hoc data and tests.
type Fields struct {
	ID     string
	Values map[string]string
}

func (f Fields) RecordID() string { return f.ID }

func (f Fields) Field(name string) (string, bool) {
	v, ok := f.Values[name]
	return v, ok
}

// normalize trims and lower-cases a query or a field value for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
