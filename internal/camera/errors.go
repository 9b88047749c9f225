package camera

import (
	"errors"
	"fmt"
)

// ErrInvalidResolution is returned when a resolution component is not strictly positive.
var ErrInvalidResolution = errors.New("invalid resolution")

// Error wraps a validation failure with the operation that produced it.
type Error struct {
	Op  string
	Res Resolution
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("camera: %s %s: %v", e.Op, e.Res, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
