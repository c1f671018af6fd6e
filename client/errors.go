package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNullArgument is returned by a Builder setter given an absent value.
	ErrNullArgument = errors.New("null argument")
	// ErrInvalidState is returned when the Builder cannot perform the call in its current state.
	ErrInvalidState = errors.New("invalid state")
)

// FieldError ties a builder error to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) IsNullArgument() bool {
	return errors.Is(e.Err, ErrNullArgument)
}
