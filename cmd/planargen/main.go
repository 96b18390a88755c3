// Command planargen prints a random planar embedded graph as node-link JSON.
//
// Usage:
//
//	planargen -n 8 --sparseness 0.4 --seed 7 [--connected=false] [--strict]
//	          [--width 100 --height 100] [--angle 15] [--relax 0.9] [--pretty] [-v]
//
// Settings may also come from planargen.toml or PLANARGEN_* variables.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphquest/builder"
	"github.com/katalvlaran/graphquest/converters"
	"github.com/katalvlaran/graphquest/geom"
	"github.com/katalvlaran/graphquest/internal/config"
	"github.com/katalvlaran/graphquest/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	f := config.NewFlagSet("planargen")
	f.SetOutput(stderr)
	if err := f.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(f)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res, err := builder.Generate(cfg.N, cfg.Connected, cfg.Sparseness, options(cfg, logger)...)
	if err != nil {
		logger.Error("generation failed", "error", err)
		return 1
	}

	ug, _ := converters.ToGonum(res.Graph)
	logger.Info("generated graph",
		"n", cfg.N, "seed", cfg.Seed,
		"vertices", res.Graph.VertexCount(), "edges", res.Graph.EdgeCount(),
		"components", len(topo.ConnectedComponents(ug)),
		"satisfied", res.Satisfied, "spacing", res.Stats.Spacing)
	if !res.Satisfied {
		logger.Warn("stopping condition not met; output is best effort",
			"placed", res.Graph.VertexCount(), "sampled", res.Points.Len())
	}

	out, err := converters.MarshalNodeLink(res.Graph, cfg.Pretty)
	if err != nil {
		logger.Error("encoding failed", "error", err)
		return 1
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", out); err != nil {
		logger.Error("write failed", "error", err)
		return 1
	}

	return 0
}

// newLogger honors an explicit log level before the -v count.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level := logging.LevelFromVerbosity(cfg.Verbose)
	if cfg.Log.Level != "" {
		var err error
		if level, err = logging.ParseLevel(cfg.Log.Level); err != nil {
			return nil, err
		}
	}

	return logging.New(w, cfg.Log.Format, level)
}

// options translates a validated config into builder options.
func options(cfg *config.Config, logger *slog.Logger) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithSeed(cfg.Seed),
		builder.WithRegion(cfg.Width, cfg.Height),
		builder.WithAngleTolerance(geom.Radians(cfg.Angle)),
		builder.WithMaxAttempts(cfg.Attempts),
		builder.WithLogger(logger),
	}
	if cfg.Relax > 0 {
		opts = append(opts, builder.WithSpacingRelax(cfg.Relax))
	}
	if cfg.Strict {
		opts = append(opts, builder.WithStrict())
	}

	return opts
}
