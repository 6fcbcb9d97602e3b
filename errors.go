package uuid

import "errors"

var (
	// ErrInvalidFormat is returned for any text that is not a valid UUID.
	// It carries no detail about which part of the input was wrong.
	ErrInvalidFormat = errors.New("uuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuid: invalid UUID length (expected 16 bytes)")
)
