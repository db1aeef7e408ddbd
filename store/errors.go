package store

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every *IOError via errors.Is.
var ErrIO = errors.New("storage i/o error")

// IOError reports a failure to create, read or write backing storage.
type IOError struct {
	Op   string // "mkdir", "read", "write", "backup", "open"
	Name string // file name or directory
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) succeed for any IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func ioErr(op, name string, err error) error {
	return &IOError{Op: op, Name: name, Err: err}
}
