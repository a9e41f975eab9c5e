package types

import "errors"

// Standard errors returned by the storage layer. Callers should test with
// errors.Is; operations wrap these with contextual detail.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID is returned when an operation receives a non-positive id.
	ErrInvalidID = errors.New("invalid id")

	// ErrAlreadyOpen is returned by Open on a store that is already open.
	ErrAlreadyOpen = errors.New("store already open")

	// ErrStoreClosed is returned by operations on a store that has not been
	// opened or has been closed.
	ErrStoreClosed = errors.New("store is closed")
)
