package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation names a reminder id that does not
// exist in the store.
var ErrNotFound = errors.New("reminder not found")

// CorruptError indicates the persisted store file exists but could not be
// decoded. The file is left untouched so the user can inspect or repair it.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt reminder store at %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}
