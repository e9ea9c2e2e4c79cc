package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Module paths repeat heavily
// across the dependency graph, so graph keys are interned to keep comparisons
// cheap and memory flat.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
