// Package utils provides utility functions for FrodoKEM matrix expansion.
// This file contains safe arithmetic and allocation helpers to prevent
// integer overflow and denial-of-service via large allocations.

package utils

import (
	"errors"
	"math"
)

// Maximum allowed sizes to prevent DoS via large allocations.
const (
	// MaxMatrixElements is the maximum allowed number of elements in a generated matrix.
	MaxMatrixElements = 1 << 26 // 64M elements, 128 MiB of uint16
)

var (
	// ErrOverflow indicates an integer overflow occurred.
	ErrOverflow = errors.New("integer overflow")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// SafeMultiply multiplies two non-negative integers and returns an error if overflow occurs.
func SafeMultiply(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidLength
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	// Check for overflow before multiplying
	if a > math.MaxInt/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckMatrixSize validates that an n x n matrix fits within MaxMatrixElements.
func CheckMatrixSize(n int) error {
	size, err := SafeMultiply(n, n)
	if err != nil {
		return err
	}
	return CheckLength(size, MaxMatrixElements)
}
