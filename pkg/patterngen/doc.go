// Package patterngen generates random strings of a fixed length from named
// character sets called patterns.
//
// A Generator is configured with an output length (DefaultLength when not
// given) and one pattern, either a built-in class (Lowercase, Uppercase,
// Digits) or a caller-supplied set of characters registered under a key.
// Each call to Generate draws every character independently and uniformly
// from that pattern.
//
// # Usage
//
//	g, err := patterngen.New(
//	    patterngen.WithLength(8),
//	    patterngen.WithPredefinedPattern(patterngen.Digits),
//	)
//	if err != nil {
//	    return err
//	}
//	code, err := g.Generate() // e.g. "40918273"
//
// Patterns can also be added after construction:
//
//	g := patterngen.MustNew()
//	if err := g.AddCustomPattern("hex", "0123456789abcdef"); err != nil {
//	    return err
//	}
//
// # Rules
//
//   - Keys are unique per generator. Predefined patterns use their identifier
//     name ("LOWERCASE", "UPPERCASE", "DIGITS") as key, so adding Digits twice,
//     or a custom pattern named "DIGITS" after it, fails with ErrKeyExists.
//   - Generate requires exactly one registered pattern. Zero patterns yields
//     ErrNoPatterns; more than one yields ErrMultiplePatterns, since combining
//     several active patterns is not supported.
//   - The length must be positive; New rejects anything else.
//
// # Errors
//
// Every error wraps one of two kinds and can be matched with errors.Is:
//
//   - ErrInvalidArgument: ErrUnknownPattern, ErrKeyExists, ErrEmptyKey,
//     ErrEmptyPattern, ErrInvalidLength, ErrInvalidConfig.
//   - ErrInvalidState: ErrNoPatterns, ErrMultiplePatterns.
//
// # Randomness
//
// The default source is the math/rand/v2 top-level generator. It is not
// suitable for secrets, tokens or passwords. WithSource accepts any Source,
// and NewSeededSource gives reproducible output for tests and fixtures.
//
// # Configuration
//
// LoadConfig reads PATTERNGEN_LENGTH, PATTERNGEN_PREDEFINED and
// PATTERNGEN_CUSTOM from the environment; NewFromConfig validates the result
// and builds a Generator, reporting every bad entry at once.
//
// # Concurrency
//
// A Generator guards its state with a mutex, so it may be configured and used
// from multiple goroutines. The predefined table is read-only.
package patterngen
