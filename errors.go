package uuidcheck

import "errors"

var (
	// ErrInvalidFormat indicates that the string is not a canonical UUID
	ErrInvalidFormat = errors.New("uuidcheck: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidcheck: invalid UUID length (expected 16 bytes)")
)
