package store

import "fmt"

// DataLoadError means the weather collection could not be fetched.
// It is fatal to the initial render.
type DataLoadError struct {
	Err error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("loading weather data: %v", e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// NonCriticalLoadError means favorites could not be fetched. Callers carry
// on with an empty favorites list.
type NonCriticalLoadError struct {
	Err error
}

func (e *NonCriticalLoadError) Error() string {
	return fmt.Sprintf("loading favorites: %v", e.Err)
}

func (e *NonCriticalLoadError) Unwrap() error { return e.Err }

// MutationError means creating or deleting a favorite failed. Local state
// is unchanged.
type MutationError struct {
	Op  string // "add" or "remove"
	ID  string // weather id for add, favorite id for remove
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("failed to %s favorite %s: %v", e.Op, e.ID, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
