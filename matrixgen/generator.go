// Package matrixgen expands a public seed into the FrodoKEM matrix A.
//
// Two strategies are provided behind the Generator interface: SHAKE128
// expands one row per XOF invocation, AES128 encrypts one counter block
// per 8 columns. Both are pure functions of (n, q, seed). A Generator holds
// no seed-derived state and is safe for concurrent use.
package matrixgen

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
	"github.com/BackendStack21/frodo-matrix-go/core"
	"github.com/BackendStack21/frodo-matrix-go/utils"
)

// minParallelRows is the smallest n for which rows are spread across goroutines.
const minParallelRows = 64

// Generator expands a seed into an n x n matrix with entries in [0, q).
type Generator interface {
	// GenMatrix returns a freshly allocated matrix owned by the caller.
	// On error no matrix is returned.
	GenMatrix(seed []byte) (frodomatrix.Matrix, error)
	// N returns the matrix dimension.
	N() int
	// Q returns the modulus.
	Q() int
	// Strategy returns the expansion strategy.
	Strategy() frodomatrix.Strategy
	// SeedLen returns the required seed length, or 0 if any length is accepted.
	SeedLen() int
}

// New returns a generator for n x n matrices over Z_q using strategy.
func New(n, q int, strategy frodomatrix.Strategy, opts ...Option) (Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := core.ValidateDimensions(n, q); err != nil {
		return nil, invalidParameter("%v", err)
	}
	if err := utils.CheckMatrixSize(n); err != nil {
		return nil, invalidParameter("n=%d: %v", n, err)
	}
	if cfg.seedLen < 0 {
		return nil, invalidParameter("seed length %d", cfg.seedLen)
	}

	b := base{n: n, q: q, mask: uint16(q - 1), workers: cfg.workers}

	switch strategy {
	case frodomatrix.SHAKE128:
		if cfg.acquireXOF == nil {
			return nil, invalidParameter("nil XOF constructor")
		}
		b.strategy = frodomatrix.SHAKE128
		b.seedLen = cfg.seedLen
		return &hashGenerator{base: b, acquire: cfg.acquireXOF, release: cfg.releaseXOF}, nil

	case frodomatrix.AES128:
		if cfg.newCipher == nil {
			return nil, invalidParameter("nil block cipher constructor")
		}
		if cfg.keyLen <= 0 {
			return nil, invalidParameter("key length %d", cfg.keyLen)
		}
		if n%core.AESBlockColumns != 0 {
			return nil, invalidParameter("n=%d is not a multiple of %d", n, core.AESBlockColumns)
		}
		if cfg.seedLen != 0 && cfg.seedLen != cfg.keyLen {
			return nil, invalidParameter("seed length %d does not match key length %d", cfg.seedLen, cfg.keyLen)
		}
		b.strategy = frodomatrix.AES128
		b.seedLen = cfg.keyLen
		return &cipherGenerator{base: b, newCipher: cfg.newCipher}, nil

	default:
		return nil, invalidParameter("unknown strategy %q", strategy)
	}
}

// NewFromParams returns a generator for a validated parameter set.
// The seed length is pinned to params.SeedLen.
func NewFromParams(params frodomatrix.Params, opts ...Option) (Generator, error) {
	if err := core.ValidateParams(params); err != nil {
		return nil, invalidParameter("%v", err)
	}
	opts = append([]Option{WithSeedLen(params.SeedLen)}, opts...)
	return New(params.N, params.Q, params.Strategy, opts...)
}

// base carries the immutable configuration shared by both strategies.
type base struct {
	n        int
	q        int
	mask     uint16 // q-1; q is a power of two so x mod q == x & mask
	seedLen  int
	strategy frodomatrix.Strategy
	workers  int
}

func (b *base) N() int                         { return b.n }
func (b *base) Q() int                         { return b.q }
func (b *base) SeedLen() int                   { return b.seedLen }
func (b *base) Strategy() frodomatrix.Strategy { return b.strategy }

// forEachRowRange splits [0, n) into contiguous ranges and runs fn on each,
// in parallel for large matrices. It returns the first error.
// Each range writes only its own rows.
func (b *base) forEachRowRange(fn func(start, end int) error) error {
	numWorkers := b.workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if b.n < minParallelRows || numWorkers <= 1 {
		return fn(0, b.n)
	}

	var g errgroup.Group
	rowsPerWorker := (b.n + numWorkers - 1) / numWorkers
	for start := 0; start < b.n; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > b.n {
			end = b.n
		}
		start := start
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}
