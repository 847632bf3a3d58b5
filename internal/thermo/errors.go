package thermo

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks inputs no front-end should ever send, such as a
// negative particle count. Zero counts and zero-size boxes are valid.
var ErrInvalidParameter = errors.New("thermo: invalid parameter")

// ParamError names the offending field.
type ParamError struct {
	Field string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%v", ErrInvalidParameter, e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
