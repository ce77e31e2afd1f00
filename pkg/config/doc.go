// Package config loads application settings from the process environment.
//
// It pairs github.com/joho/godotenv, which reads optional `.env` files into
// the environment, with github.com/caarlos0/env/v11, which parses tagged
// structs:
//
//	type Settings struct {
//	    Length int `env:"LENGTH" envDefault:"16"`
//	}
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
//	    return err
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("PATTERNGEN_")); err != nil {
//	    return err
//	}
//
// Load can also read files itself with WithEnvFiles; missing files are
// skipped there, which suits optional local overrides:
//
//	err := config.Load(&s, config.WithEnvFiles(".env", ".env.local"))
//
// Variables already present in the environment always win over values read
// from files. When several files are given, the first file that defines a
// variable wins.
//
// # Errors
//
//   - ErrNilPointer    – nil pointer passed to Load.
//   - ErrParsingConfig – the environment could not be parsed into the struct.
//   - ErrLoadingEnv    – a `.env` file could not be read.
package config
