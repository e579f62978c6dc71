// Package idgen provides ready-to-use string identifiers for callers that
// do not care about the underlying ULID machinery.
package idgen

import (
	"github.com/plaenen/ulid/pkg/ulid"
)

var generator = ulid.NewGenerator()

// NewSortableID returns a 26-character identifier that sorts strictly after
// every identifier previously returned by this function in this process.
func NewSortableID() (string, error) {
	id, err := generator.MonotonicNew()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// MustGenerateSortableID is NewSortableID for call sites that prefer a
// panic over error plumbing, such as test fixtures.
func MustGenerateSortableID() string {
	s, err := NewSortableID()
	if err != nil {
		panic(err)
	}
	return s
}

// NewID returns a random-mode identifier. IDs from the same millisecond
// have no defined relative order.
func NewID() (string, error) {
	id, err := generator.New()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
