package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how Load parses the environment.
type Option func(*loadOptions)

type loadOptions struct {
	env      env.Options
	envFiles []string
}

// WithPrefix only considers variables starting with prefix. The prefix is
// stripped before matching field tags.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.env.Prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process environment.
// Handy in tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *loadOptions) {
		o.env.Environment = vars
	}
}

// WithEnvFiles makes Load read the given .env files into the process
// environment before parsing. Missing files are skipped. Repeated use appends.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// LoadEnv reads the given .env files into the process environment, or `.env`
// in the working directory when no path is given.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v according to its `env` tags.
//
//	type Settings struct {
//		Length     int               `env:"LENGTH" envDefault:"16"`
//		Predefined []string          `env:"PREDEFINED" envSeparator:","`
//		Custom     map[string]string `env:"CUSTOM"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("APP_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadOptionalEnv(o.envFiles); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, o.env); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// loadOptionalEnv loads each file on its own so a missing file does not stop
// the ones after it.
func loadOptionalEnv(paths []string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnv, err)
		}
	}
	return nil
}
