package patterngen

import "log/slog"

// Option configures a Generator at construction time.
type Option func(*options)

type options struct {
	length   int
	source   Source
	logger   *slog.Logger
	patterns []patternEntry
}

// patternEntry is a registration deferred until New, so that options report
// errors through the same checks as AddPredefinedPattern and AddCustomPattern.
type patternEntry struct {
	builtin    bool
	predefined Predefined
	key        string
	chars      string
}

func defaultOptions() *options {
	return &options{
		length: DefaultLength,
		source: globalSource{},
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLength sets the number of characters produced by each Generate call.
// Non-positive values make New fail with ErrInvalidLength.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
	}
}

// WithPredefinedPattern registers a built-in pattern under its identifier name.
func WithPredefinedPattern(p Predefined) Option {
	return func(o *options) {
		o.patterns = append(o.patterns, patternEntry{builtin: true, predefined: p})
	}
}

// WithCustomPattern registers chars under key.
func WithCustomPattern(key, chars string) Option {
	return func(o *options) {
		o.patterns = append(o.patterns, patternEntry{key: key, chars: chars})
	}
}

// WithSource replaces the default math/rand/v2 source. Nil is ignored.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithLogger enables debug diagnostics for rejected configuration and failed
// generation. Nil is ignored; without this option nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
