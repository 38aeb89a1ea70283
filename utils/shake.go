package utils

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

var shake128Pool = sync.Pool{
	New: func() interface{} {
		return sha3.NewShake128()
	},
}

// AcquireShake128 returns a SHAKE128 state in its initial condition.
// The caller holds it exclusively until it is handed to ReleaseShake128.
func AcquireShake128() sha3.ShakeHash {
	return shake128Pool.Get().(sha3.ShakeHash)
}

// ReleaseShake128 resets h and returns it to the pool.
// h must not be used after the call.
func ReleaseShake128(h sha3.ShakeHash) {
	h.Reset()
	shake128Pool.Put(h)
}

// SHA3256 computes the SHA3-256 cryptographic hash of the input.
// It returns a 32-byte hash.
func SHA3256(input []byte) []byte {
	h := sha3.New256()
	h.Write(input)
	return h.Sum(nil)
}
