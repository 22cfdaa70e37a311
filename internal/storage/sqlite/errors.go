package sqlite

import "errors"

// ErrStorageClosed is returned by queries issued after Close.
var ErrStorageClosed = errors.New("storage is closed")

// Error wraps a failure reported by the database driver.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
