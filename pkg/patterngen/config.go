package patterngen

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/jellydator/validation"

	"github.com/dmitrymomot/patterngen/pkg/config"
)

// EnvPrefix is prepended to every variable read by LoadConfig.
const EnvPrefix = "PATTERNGEN_"

// Config describes a generator in terms that can be read from the environment.
//
//	PATTERNGEN_LENGTH=32
//	PATTERNGEN_PREDEFINED=digits
//	PATTERNGEN_CUSTOM=hex:0123456789abcdef
type Config struct {
	Length     int               `env:"LENGTH" envDefault:"16"`
	Predefined []string          `env:"PREDEFINED" envSeparator:","`
	Custom     map[string]string `env:"CUSTOM"`
}

// DefaultEnvFile is read by LoadConfig when present.
const DefaultEnvFile = ".env"

// LoadConfig reads Config from PATTERNGEN_* variables, after loading
// DefaultEnvFile if it exists. Extra options are passed to config.Load,
// e.g. config.WithEnvFiles for more files or config.WithEnvironment in tests.
// Variables already set in the process win over values from files.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{
		config.WithPrefix(EnvPrefix),
		config.WithEnvFiles(DefaultEnvFile),
	}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks the configuration without building a generator.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Length,
			validation.Required.Error("length is required"),
			validation.Min(1).Error("length must be positive"),
		),
		validation.Field(&c.Predefined,
			validation.Each(validation.By(knownPredefined)),
		),
		validation.Field(&c.Custom,
			validation.By(nonEmptyKeys),
			validation.Each(validation.Required.Error("pattern cannot be empty")),
		),
	)
}

func knownPredefined(value any) error {
	name, _ := value.(string)
	if _, err := ParsePredefined(name); err != nil {
		return fmt.Errorf("unknown predefined pattern %q", name)
	}
	return nil
}

func nonEmptyKeys(value any) error {
	m, _ := value.(map[string]string)
	if _, ok := m[""]; ok {
		return errors.New("pattern key cannot be empty")
	}
	return nil
}

// NewFromConfig validates cfg and builds a generator from it. Predefined
// patterns are registered first, then custom ones in key order. All
// registration failures are reported together.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g, err := New(append(slices.Clone(opts), WithLength(cfg.Length))...)
	if err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for _, name := range cfg.Predefined {
		p, err := ParsePredefined(name)
		if err == nil {
			err = g.AddPredefinedPattern(p)
		}
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	for _, k := range slices.Sorted(maps.Keys(cfg.Custom)) {
		if err := g.AddCustomPattern(k, cfg.Custom[k]); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return g, nil
}
