package matrixgen

import (
	"crypto/cipher"
	"encoding/binary"

	"github.com/pkg/errors"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
	"github.com/BackendStack21/frodo-matrix-go/core"
)

const aesBlockSize = 16

// cipherGenerator derives A[i][j..j+7] from E_seed(LE16(i) || LE16(j) || 0^96).
type cipherGenerator struct {
	base
	newCipher func(key []byte) (cipher.Block, error)
}

func (g *cipherGenerator) GenMatrix(seed []byte) (frodomatrix.Matrix, error) {
	if len(seed) != g.seedLen {
		return nil, invalidSeedLength(len(seed), g.seedLen)
	}

	A := frodomatrix.NewMatrix(g.n)
	err := g.forEachRowRange(func(start, end int) error {
		// Each range keys its own cipher, so no key schedule is shared between goroutines.
		block, err := g.newCipher(seed)
		if err != nil {
			return &PrimitiveError{Op: "aes128 key setup", Err: err}
		}
		if bs := block.BlockSize(); bs != aesBlockSize {
			return &PrimitiveError{Op: "aes128 key setup", Err: errors.Errorf("block size %d, want %d", bs, aesBlockSize)}
		}

		var in, out [aesBlockSize]byte
		for i := start; i < end; i++ {
			binary.LittleEndian.PutUint16(in[0:], uint16(i))
			row := A[i]
			for j := 0; j < g.n; j += core.AESBlockColumns {
				binary.LittleEndian.PutUint16(in[2:], uint16(j))
				block.Encrypt(out[:], in[:])
				for k := 0; k < core.AESBlockColumns; k++ {
					row[j+k] = binary.LittleEndian.Uint16(out[2*k:]) & g.mask
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return A, nil
}
