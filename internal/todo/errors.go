package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleIdentifier marks an identifier present in the list but missing from the item store.
	ErrStaleIdentifier = errors.New("stale identifier")
	// ErrDuplicateIdentifier marks an append of an identifier already in the list.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrIDExhausted is returned when the generator cannot find an unused identifier.
	ErrIDExhausted = errors.New("identifier space exhausted")
)

type invariantError struct {
	err error
	id  string
}

func (e invariantError) Error() string {
	return fmt.Sprintf("invariant violation: %v: %s", e.err, e.id)
}

func (e invariantError) Unwrap() error { return e.err }

func errStale(id string) error {
	return invariantError{err: ErrStaleIdentifier, id: id}
}

func errDuplicate(id string) error {
	return invariantError{err: ErrDuplicateIdentifier, id: id}
}
