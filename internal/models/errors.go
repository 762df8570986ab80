package models

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error returned from this package.
var ErrInvalid = errors.New("invalid")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrInvalid }

func invalidf(format string, args ...interface{}) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}
