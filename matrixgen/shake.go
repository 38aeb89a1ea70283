package matrixgen

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
)

// hashGenerator derives row i as SHAKE128(LE16(i) || seed, 16n bits).
type hashGenerator struct {
	base
	acquire func() sha3.ShakeHash
	release func(sha3.ShakeHash)
}

func (g *hashGenerator) GenMatrix(seed []byte) (frodomatrix.Matrix, error) {
	if g.seedLen != 0 && len(seed) != g.seedLen {
		return nil, invalidSeedLength(len(seed), g.seedLen)
	}

	A := frodomatrix.NewMatrix(g.n)
	err := g.forEachRowRange(func(start, end int) error {
		input := make([]byte, 2+len(seed))
		copy(input[2:], seed)
		out := make([]byte, 2*g.n)
		for i := start; i < end; i++ {
			binary.LittleEndian.PutUint16(input, uint16(i))
			if err := g.squeezeRow(input, out); err != nil {
				return err
			}
			row := A[i]
			for j := range row {
				row[j] = binary.LittleEndian.Uint16(out[2*j:]) & g.mask
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return A, nil
}

// squeezeRow runs one row on a state held exclusively for this row.
func (g *hashGenerator) squeezeRow(input, out []byte) error {
	h := g.acquire()
	defer g.release(h)

	if _, err := h.Write(input); err != nil {
		return &PrimitiveError{Op: "shake128 absorb", Err: err}
	}
	if _, err := io.ReadFull(h, out); err != nil {
		return &PrimitiveError{Op: "shake128 squeeze", Err: err}
	}
	return nil
}
