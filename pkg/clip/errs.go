package clip

import "errors"

var (
	// ErrBadFormat indicates a clip format with a non-positive duration,
	// sample rate, channel count, or an unsupported bit depth.
	ErrBadFormat = errors.New("clip: bad format")

	// ErrBadContainer indicates an unknown container name.
	ErrBadContainer = errors.New("clip: unknown container")
)
