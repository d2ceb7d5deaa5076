package store

import "fmt"

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// DeserializationError reports a persisted blob that could not be decoded.
// Charts.Load recovers from it by starting with an empty store.
type DeserializationError struct {
	Err error
}

func (e DeserializationError) Error() string {
	return "decode charts: " + e.Err.Error()
}

func (e DeserializationError) Unwrap() error { return e.Err }
