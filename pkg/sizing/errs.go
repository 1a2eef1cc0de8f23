package sizing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates an input scalar outside its declared range or
	// an unknown battery type. Such input never reaches the calculator.
	ErrInvalidInput = errors.New("sizing: invalid input")

	// ErrSaturated indicates that inferences/hour times clip length exceeds
	// one hour, so the active duty fraction would be above 1. Only reachable
	// with a custom clip length.
	ErrSaturated = fmt.Errorf("%w: active duty above 1", ErrInvalidInput)

	// ErrBadProfile indicates that a device profile could not be read or
	// failed validation.
	ErrBadProfile = errors.New("sizing: bad profile")
)
