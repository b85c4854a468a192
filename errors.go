package kbloom

import "errors"

var (
	// ErrInvalidParameter is returned when a filter is constructed or resized
	// with parameters that cannot produce a valid filter.
	ErrInvalidParameter = errors.New("kbloom: invalid parameter")

	// ErrTooLarge is returned when the requested bit array exceeds MaxBits.
	// The filter is left unchanged.
	ErrTooLarge = errors.New("kbloom: bit array too large")

	// ErrInvalidData is returned when the serialized data is invalid or corrupted.
	ErrInvalidData = errors.New("kbloom: invalid serialized data")

	// ErrUnsupportedVersion is returned when the serialization version is not supported.
	ErrUnsupportedVersion = errors.New("kbloom: unsupported serialization version")

	// ErrInvalidK is returned when the k value in serialized data is not usable.
	ErrInvalidK = errors.New("kbloom: invalid k value in serialized data")
)
