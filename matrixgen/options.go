package matrixgen

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/sha3"

	"github.com/BackendStack21/frodo-matrix-go/core"
	"github.com/BackendStack21/frodo-matrix-go/utils"
)

// Option configures a generator at construction time.
type Option func(*config)

type config struct {
	seedLen int // 0 accepts any length for SHAKE128
	workers int // <= 0 means GOMAXPROCS at call time

	acquireXOF func() sha3.ShakeHash
	releaseXOF func(sha3.ShakeHash)

	newCipher func(key []byte) (cipher.Block, error)
	keyLen    int
}

func defaultConfig() config {
	return config{
		acquireXOF: utils.AcquireShake128,
		releaseXOF: utils.ReleaseShake128,
		newCipher:  aes.NewCipher,
		keyLen:     core.AESKeyLen,
	}
}

// WithSeedLen pins the seed length accepted by GenMatrix.
// For SHAKE128 zero means any length. For AES128 it must equal the key length.
func WithSeedLen(n int) Option {
	return func(c *config) {
		c.seedLen = n
	}
}

// WithWorkers bounds the number of goroutines used per GenMatrix call.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithXOF replaces the SHAKE128 capability. newXOF must return a fresh state
// on every call; states are never reused by the generator.
func WithXOF(newXOF func() sha3.ShakeHash) Option {
	return func(c *config) {
		c.acquireXOF = newXOF
		c.releaseXOF = func(sha3.ShakeHash) {}
	}
}

// WithBlockCipher replaces the AES-128 capability. newCipher is called with
// the seed as key and must return a cipher with a 16-byte block.
func WithBlockCipher(newCipher func(key []byte) (cipher.Block, error), keyLen int) Option {
	return func(c *config) {
		c.newCipher = newCipher
		c.keyLen = keyLen
	}
}
