// Package main provides the frodo-matrix-cli command line interface for FrodoKEM matrix expansion.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
	"github.com/BackendStack21/frodo-matrix-go/core"
	"github.com/BackendStack21/frodo-matrix-go/matrixgen"
	"github.com/BackendStack21/frodo-matrix-go/utils"
)

const (
	version = "1.0.0"
	appName = "frodo-matrix-cli"
)

// OutputFormat represents the output format for serialization
type OutputFormat string

const (
	FormatHex    OutputFormat = "hex"
	FormatBase64 OutputFormat = "base64"
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
)

// MatrixExport represents an exported matrix
type MatrixExport struct {
	Level    string     `json:"level,omitempty"`
	Strategy string     `json:"strategy"`
	N        int        `json:"n"`
	Q        int        `json:"q"`
	Seed     string     `json:"seed"`
	Digest   string     `json:"digest"`
	Matrix   [][]uint16 `json:"matrix,omitempty"`
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log, ok := app.Metadata[loggerMetaKey].(*zerolog.Logger)
		if !ok {
			log = newLogger(app.ErrWriter, "info")
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:      appName,
		Usage:     "FrodoKEM public-matrix expansion",
		UsageText: appName + " [global options] command [command options]",
		Version:   fmt.Sprintf("%s (library %s)", version, frodomatrix.Version),
		Metadata:  map[string]interface{}{},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    logLevelFlag,
				Value:   "info",
				Usage:   "Application logging level {debug, info, warn, error, fatal}",
				EnvVars: []string{"FRODO_MATRIX_LOGLEVEL"},
			},
		},
		Before: setupLogger,
	}
	app.Commands = commands()
	return app
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "params",
			Usage:  "List the FrodoKEM parameter presets",
			Action: listParams,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(FormatYAML), Usage: "json or yaml"},
			},
		},
		{
			Name:  "gen",
			Usage: "Expand a seed into the matrix A",
			Description: `Expands seedA into the n x n matrix A over Z_q.
The matrix is written row-major as little-endian 16-bit words (hex, base64)
or as a JSON document. --digest-only prints the SHA3-256 of that packing.`,
			Action: genMatrix,
			Flags: append(paramFlags(),
				&cli.StringFlag{Name: "seed", Usage: "seedA as hex"},
				&cli.BoolFlag{Name: "random-seed", Usage: "Draw seedA from the operating system CSPRNG"},
				&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(FormatHex), Usage: "hex, base64 or json"},
				&cli.BoolFlag{Name: "digest-only", Usage: "Print only the SHA3-256 digest of the matrix"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write to file instead of stdout"},
			),
		},
		{
			Name:   "verify",
			Usage:  "Regenerate A from a seed and compare it against a digest",
			Action: verifyMatrix,
			Flags: append(paramFlags(),
				&cli.StringFlag{Name: "seed", Usage: "seedA as hex", Required: true},
				&cli.StringFlag{Name: "digest", Usage: "Expected SHA3-256 digest as hex", Required: true},
			),
		},
		{
			Name:   "bench",
			Usage:  "Time matrix generation",
			Action: benchmark,
			Flags: append(paramFlags(),
				&cli.IntFlag{Name: "iterations", Aliases: []string{"i"}, Value: 10, Usage: "Generations per strategy"},
				&cli.BoolFlag{Name: "all-strategies", Usage: "Benchmark every strategy instead of --strategy"},
			),
		},
	}
}

// ============================================================================
// Commands
// ============================================================================

func listParams(c *cli.Context) error {
	var presets []frodomatrix.Params
	for _, level := range core.Levels {
		for _, strategy := range core.Strategies {
			p, err := core.GetParams(level, strategy)
			if err != nil {
				return err
			}
			presets = append(presets, p)
		}
	}

	switch OutputFormat(c.String("format")) {
	case FormatJSON:
		out, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, string(out))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(c.App.Writer)
		defer enc.Close()
		return enc.Encode(presets)
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
}

func genMatrix(c *cli.Context) error {
	log := loggerFromContext(c)

	params, workers, err := resolveParams(c)
	if err != nil {
		return err
	}
	seed, err := seedFromContext(c, params)
	if err != nil {
		return err
	}
	defer utils.Zeroize(seed)
	gen, err := matrixgen.NewFromParams(params, matrixgen.WithWorkers(workers))
	if err != nil {
		return err
	}

	start := time.Now()
	A, err := gen.GenMatrix(seed)
	if err != nil {
		return errors.Wrap(err, "matrix generation failed")
	}
	log.Debug().
		Str("strategy", string(params.Strategy)).
		Int("n", params.N).
		Int("q", params.Q).
		Dur("elapsed", time.Since(start)).
		Msg("matrix generated")

	packed := A.Bytes()
	digest := hex.EncodeToString(utils.SHA3256(packed))

	var out []byte
	format := OutputFormat(c.String("format"))
	switch {
	case c.Bool("digest-only"):
		out = []byte(digest + "\n")
	case format == FormatHex:
		out = []byte(hex.EncodeToString(packed) + "\n")
	case format == FormatBase64:
		out = []byte(base64.StdEncoding.EncodeToString(packed) + "\n")
	case format == FormatJSON:
		export := MatrixExport{
			Level:    string(params.Level),
			Strategy: string(params.Strategy),
			N:        params.N,
			Q:        params.Q,
			Seed:     hex.EncodeToString(seed),
			Digest:   digest,
			Matrix:   A,
		}
		out, err = json.MarshalIndent(export, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return writeOutput(c, out, c.String("output"))
}

func verifyMatrix(c *cli.Context) error {
	params, workers, err := resolveParams(c)
	if err != nil {
		return err
	}
	seed, err := decodeHex(c.String("seed"), "seed")
	if err != nil {
		return err
	}
	defer utils.Zeroize(seed)
	want, err := decodeHex(c.String("digest"), "digest")
	if err != nil {
		return err
	}

	gen, err := matrixgen.NewFromParams(params, matrixgen.WithWorkers(workers))
	if err != nil {
		return err
	}
	A, err := gen.GenMatrix(seed)
	if err != nil {
		return errors.Wrap(err, "matrix generation failed")
	}
	if !utils.ConstantTimeEqual(utils.SHA3256(A.Bytes()), want) {
		return errors.New("digest mismatch")
	}
	_, err = fmt.Fprintln(c.App.Writer, "OK")
	return err
}

func benchmark(c *cli.Context) error {
	log := loggerFromContext(c)

	params, workers, err := resolveParams(c)
	if err != nil {
		return err
	}
	iterations := c.Int("iterations")
	if iterations < 1 {
		iterations = 1
	}

	strategies := []frodomatrix.Strategy{params.Strategy}
	if c.Bool("all-strategies") {
		strategies = core.Strategies
	}

	w := c.App.Writer
	fmt.Fprintf(w, "FrodoKEM Matrix Benchmark Results\n")
	fmt.Fprintf(w, "=================================\n")
	fmt.Fprintf(w, "n = %d, q = %d\n", params.N, params.Q)
	fmt.Fprintf(w, "Iterations: %d\n\n", iterations)

	for _, strategy := range strategies {
		p := params
		p.Strategy = strategy
		if strategy == frodomatrix.AES128 {
			p.SeedLen = core.AESKeyLen
		}
		if err := core.ValidateParams(p); err != nil {
			log.Warn().Str("strategy", string(strategy)).Err(err).Msg("skipping strategy")
			continue
		}
		gen, err := matrixgen.NewFromParams(p, matrixgen.WithWorkers(workers))
		if err != nil {
			return err
		}
		seedLen := p.SeedLen
		if seedLen == 0 {
			seedLen = core.SeedALen
		}
		seed, err := utils.SecureRandomBytes(seedLen)
		if err != nil {
			return errors.Wrap(err, "cannot draw seed")
		}

		var total time.Duration
		for i := 0; i < iterations; i++ {
			start := time.Now()
			if _, err := gen.GenMatrix(seed); err != nil {
				return errors.Wrapf(err, "%s generation failed", strategy)
			}
			total += time.Since(start)
		}
		fmt.Fprintf(w, "  %-9s %v (avg)\n", strategy+":", total/time.Duration(iterations))
	}
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func seedFromContext(c *cli.Context, params frodomatrix.Params) ([]byte, error) {
	hasSeed := c.String("seed") != ""
	if hasSeed == c.Bool("random-seed") {
		return nil, errors.New("exactly one of --seed or --random-seed is required")
	}
	if hasSeed {
		return decodeHex(c.String("seed"), "seed")
	}
	n := params.SeedLen
	if n == 0 {
		n = core.SeedALen
	}
	seed, err := utils.SecureRandomBytes(n)
	if err != nil {
		return nil, errors.Wrap(err, "cannot draw seed")
	}
	return seed, nil
}

func decodeHex(s, what string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(strings.TrimPrefix(s, "0x")))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", what)
	}
	return b, nil
}

func writeOutput(c *cli.Context, data []byte, filename string) error {
	var w io.Writer = c.App.Writer
	if filename != "" {
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return errors.Wrapf(err, "cannot write %s", filename)
		}
		loggerFromContext(c).Info().Str("file", filename).Int("bytes", len(data)).Msg("output written")
		return nil
	}
	_, err := w.Write(data)
	return err
}
