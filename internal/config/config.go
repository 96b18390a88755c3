// Package config loads planargen settings from defaults, an optional TOML
// file, PLANARGEN_* environment variables and command-line flags, in that
// order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read when present and no --config flag is given.
const DefaultFile = "planargen.toml"

// EnvPrefix prefixes environment overrides, e.g. PLANARGEN_SPARSENESS=0.5
// or PLANARGEN_LOG_LEVEL=debug.
const EnvPrefix = "PLANARGEN_"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings of one planargen run.
type Config struct {
	N          int     `koanf:"n"`
	Connected  bool    `koanf:"connected"`
	Sparseness float64 `koanf:"sparseness"`
	Seed       int64   `koanf:"seed"`
	Strict     bool    `koanf:"strict"`

	Width    int     `koanf:"width"`
	Height   int     `koanf:"height"`
	Angle    float64 `koanf:"angle"`    // degrees
	Attempts int     `koanf:"attempts"` // consecutive sampler rejections
	Relax    float64 `koanf:"relax"`    // 0 disables spacing relaxation

	Pretty bool `koanf:"pretty"`

	Verbose int `koanf:"verbose"`
	Log     Log `koanf:"log"`
}

// Log selects the CLI logger.
type Log struct {
	Level  string `koanf:"level"`  // overrides Verbose when set
	Format string `koanf:"format"` // compact, text or json
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"n":          10,
		"connected":  true,
		"sparseness": 0.3,
		"seed":       int64(1),
		"strict":     false,
		"width":      100,
		"height":     100,
		"angle":      15.0,
		"attempts":   10000,
		"relax":      0.0,
		"pretty":     false,
		"verbose":    0,
		"log": map[string]interface{}{
			"level":  "",
			"format": "compact",
		},
	}
}

// NewFlagSet declares every flag Load understands. Flag names use '-' where
// config keys nest, so --log-level sets log.level.
func NewFlagSet(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("config", "", "path to a TOML config file (default "+DefaultFile+" if present)")
	f.IntP("n", "n", 10, "number of points to sample")
	f.Bool("connected", true, "require a connected graph")
	f.Float64P("sparseness", "s", 0.3, "fraction of candidates to consider before stopping, in [0,1]")
	f.Int64("seed", 1, "random seed")
	f.Bool("strict", false, "fail when the stopping condition cannot be met")
	f.Int("width", 100, "region width")
	f.Int("height", 100, "region height")
	f.Float64("angle", 15, "smallest allowed angle between incident edges, in degrees")
	f.Int("attempts", 10000, "consecutive rejected draws before the sampler gives up or relaxes")
	f.Float64("relax", 0, "spacing shrink factor in (0,1) on sampler exhaustion; 0 disables")
	f.Bool("pretty", false, "indent the JSON output")
	f.CountP("verbose", "v", "increase log verbosity (repeatable)")
	f.String("log-level", "", "log level: debug, info, warn or error")
	f.String("log-format", "compact", "log format: compact, text or json")

	return f
}

// Load resolves the configuration. Priority: Flags > Env > Config File > Defaults.
// f must come from NewFlagSet and be parsed already; it may be nil.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file: an explicit path must exist, the default one may not.
	path, explicit := DefaultFile, false
	if f != nil {
		if p, _ := f.GetString("config"); p != "" {
			path, explicit = p, true
		}
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	// 3. Environment Variables
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, func(fl *pflag.Flag) (string, interface{}) {
			if fl.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(fl.Name, "-", "."), posflag.FlagVal(f, fl)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects values the generator options would panic on.
func (c *Config) Validate() error {
	switch {
	case c.N < 0:
		return fmt.Errorf("%w: n=%d must be ≥ 0", ErrInvalid, c.N)
	case math.IsNaN(c.Sparseness) || c.Sparseness < 0 || c.Sparseness > 1:
		return fmt.Errorf("%w: sparseness=%g must be in [0,1]", ErrInvalid, c.Sparseness)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: region %dx%d must be at least 1x1", ErrInvalid, c.Width, c.Height)
	case math.IsNaN(c.Angle) || c.Angle < 0 || c.Angle >= 180:
		return fmt.Errorf("%w: angle=%g must be in [0,180)", ErrInvalid, c.Angle)
	case c.Attempts < 1:
		return fmt.Errorf("%w: attempts=%d must be ≥ 1", ErrInvalid, c.Attempts)
	case math.IsNaN(c.Relax) || c.Relax < 0 || c.Relax >= 1:
		return fmt.Errorf("%w: relax=%g must be 0 or in (0,1)", ErrInvalid, c.Relax)
	}
	switch c.Log.Format {
	case "compact", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
