package frodomatrix

// Version of the frodo-matrix Go implementation.
const Version = "1.0.0"

// API summary:
//
// Matrix generation:
//   - matrixgen.New(n, q, strategy, opts...) - Build a generator for (n, q)
//   - matrixgen.NewFromParams(params, opts...) - Build a generator from a preset
//   - gen.GenMatrix(seed) - Expand a seed into an n x n matrix
//
// Parameters:
//   - core.GetParams(level, strategy) - Get the preset for a FrodoKEM size
//   - core.ValidateParams(params) - Check a parameter set
//   - Frodo640, Frodo976, Frodo1344 - FrodoKEM sizes
//   - SHAKE128, AES128 - expansion strategies
