// Package frodomatrix implements the public-matrix expansion step of the
// FrodoKEM lattice key-encapsulation mechanism.
//
// The matrix A is never transmitted. Key generation publishes a short seed
// and encapsulation re-derives A from it, so every conforming
// implementation must produce the identical matrix bit for bit.
package frodomatrix

import (
	"encoding/binary"
)

// Strategy selects the primitive used to expand a seed into a matrix.
type Strategy string

const (
	// SHAKE128 expands each row from the SHAKE128 extendable-output function.
	SHAKE128 Strategy = "shake128"
	// AES128 expands 8-column blocks by encrypting counter blocks under AES-128.
	AES128 Strategy = "aes128"
)

// Level names a FrodoKEM parameter size.
type Level string

const (
	// Frodo640 targets NIST security level 1.
	Frodo640 Level = "FrodoKEM-640"
	// Frodo976 targets NIST security level 3.
	Frodo976 Level = "FrodoKEM-976"
	// Frodo1344 targets NIST security level 5.
	Frodo1344 Level = "FrodoKEM-1344"
)

// =============================================================================
// Parameter Types
// =============================================================================

// Params contains everything needed to build a matrix generator.
type Params struct {
	Level    Level    `json:"level,omitempty" yaml:"level,omitempty"`
	N        int      `json:"n" yaml:"n"`               // Matrix dimension
	Q        int      `json:"q" yaml:"q"`               // Power-of-two modulus, at most 2^16
	SeedLen  int      `json:"seed_len" yaml:"seed_len"` // Length of seedA in bytes
	Strategy Strategy `json:"strategy" yaml:"strategy"`
}

// =============================================================================
// Matrix
// =============================================================================

// Matrix is a square matrix over Z_q stored row-major.
// All rows share one contiguous backing array.
type Matrix [][]uint16

// NewMatrix allocates a zeroed n x n matrix.
func NewMatrix(n int) Matrix {
	if n <= 0 {
		return Matrix{}
	}
	data := make([]uint16, n*n)
	A := make(Matrix, n)
	for i := range A {
		A[i] = data[i*n : (i+1)*n : (i+1)*n]
	}
	return A
}

// Dim returns the number of rows.
func (A Matrix) Dim() int {
	return len(A)
}

// Equal reports whether A and B have the same shape and entries.
func (A Matrix) Equal(B Matrix) bool {
	if len(A) != len(B) {
		return false
	}
	for i := range A {
		if len(A[i]) != len(B[i]) {
			return false
		}
		for j := range A[i] {
			if A[i][j] != B[i][j] {
				return false
			}
		}
	}
	return true
}

// Bytes packs the matrix row-major as little-endian 16-bit words.
func (A Matrix) Bytes() []byte {
	size := 0
	for _, row := range A {
		size += 2 * len(row)
	}
	out := make([]byte, size)
	off := 0
	for _, row := range A {
		for _, v := range row {
			binary.LittleEndian.PutUint16(out[off:], v)
			off += 2
		}
	}
	return out
}
