package parameters

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue = errors.New("invalid parameter value")
	ErrOutOfRange   = errors.New("parameter out of range")
)

// ValueError reports a recognised key whose value is not a base-10 integer.
type ValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}
