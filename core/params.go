// Package core provides parameter sets and validation for FrodoKEM matrix expansion.
package core

import (
	"errors"
	"fmt"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
)

const (
	// SeedALen is the length of seedA in bytes for every FrodoKEM size.
	SeedALen = 16

	// AESKeyLen is the AES-128 key length. The AES128 strategy keys the cipher with seedA directly.
	AESKeyLen = 16

	// AESBlockColumns is the number of 16-bit entries produced per AES block.
	AESBlockColumns = 8

	// MaxN is the largest dimension whose row and column indices fit the 16-bit counters.
	MaxN = 1 << 16

	// MaxQ is the largest supported modulus.
	MaxQ = 1 << 16
)

// Frodo640Params is the FrodoKEM-640 size (q = 2^15).
var Frodo640Params = frodomatrix.Params{
	Level:   frodomatrix.Frodo640,
	N:       640,
	Q:       1 << 15,
	SeedLen: SeedALen,
}

// Frodo976Params is the FrodoKEM-976 size (q = 2^16).
var Frodo976Params = frodomatrix.Params{
	Level:   frodomatrix.Frodo976,
	N:       976,
	Q:       1 << 16,
	SeedLen: SeedALen,
}

// Frodo1344Params is the FrodoKEM-1344 size (q = 2^16).
var Frodo1344Params = frodomatrix.Params{
	Level:   frodomatrix.Frodo1344,
	N:       1344,
	Q:       1 << 16,
	SeedLen: SeedALen,
}

// Levels lists the known sizes in increasing order.
var Levels = []frodomatrix.Level{frodomatrix.Frodo640, frodomatrix.Frodo976, frodomatrix.Frodo1344}

// Strategies lists the supported expansion strategies.
var Strategies = []frodomatrix.Strategy{frodomatrix.SHAKE128, frodomatrix.AES128}

// GetParams returns the parameter set for the given size, bound to strategy.
func GetParams(level frodomatrix.Level, strategy frodomatrix.Strategy) (frodomatrix.Params, error) {
	if !KnownStrategy(strategy) {
		return frodomatrix.Params{}, fmt.Errorf("unknown strategy: %s", strategy)
	}
	var p frodomatrix.Params
	switch level {
	case frodomatrix.Frodo640:
		p = Frodo640Params
	case frodomatrix.Frodo976:
		p = Frodo976Params
	case frodomatrix.Frodo1344:
		p = Frodo1344Params
	default:
		return frodomatrix.Params{}, fmt.Errorf("unknown level: %s", level)
	}
	p.Strategy = strategy
	return p, nil
}

// KnownStrategy reports whether s names a supported strategy.
func KnownStrategy(s frodomatrix.Strategy) bool {
	return s == frodomatrix.SHAKE128 || s == frodomatrix.AES128
}

// ValidateDimensions checks n and q independently of any strategy.
func ValidateDimensions(n, q int) error {
	if n <= 0 {
		return errors.New("dimension n must be positive")
	}
	if n > MaxN {
		return fmt.Errorf("dimension n must be at most %d", MaxN)
	}
	if q < 2 || q > MaxQ || !IsPowerOfTwo(q) {
		return fmt.Errorf("modulus q must be a power of two in [2, %d]", MaxQ)
	}
	return nil
}

// ValidateParams validates the parameter set for consistency with its strategy.
func ValidateParams(params frodomatrix.Params) error {
	if err := ValidateDimensions(params.N, params.Q); err != nil {
		return err
	}
	if params.SeedLen < 0 {
		return errors.New("seed length cannot be negative")
	}
	switch params.Strategy {
	case frodomatrix.SHAKE128:
	case frodomatrix.AES128:
		if params.N%AESBlockColumns != 0 {
			return fmt.Errorf("AES128 requires n to be a multiple of %d", AESBlockColumns)
		}
		if params.SeedLen != AESKeyLen {
			return fmt.Errorf("AES128 requires a %d-byte seed", AESKeyLen)
		}
	default:
		return fmt.Errorf("unknown strategy: %s", params.Strategy)
	}
	return nil
}

// IsPowerOfTwo reports whether q is a positive power of two.
func IsPowerOfTwo(q int) bool {
	return q > 0 && q&(q-1) == 0
}
