package patterngen

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/patterngen/pkg/logger"
)

// Generator produces random strings of a fixed length from a registered pattern.
// It is safe for concurrent use.
type Generator struct {
	mu       sync.Mutex
	length   int
	source   Source
	logger   *slog.Logger
	keys     []string
	patterns map[string]string
	runes    map[string][]rune
}

// New creates a generator. Without options it produces DefaultLength characters
// and has no patterns registered.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.length < 1 {
		o.logger.Debug("generator rejected", logger.Length(o.length), logger.Error(ErrInvalidLength))
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, o.length)
	}

	g := &Generator{
		length:   o.length,
		source:   o.source,
		logger:   o.logger,
		patterns: make(map[string]string, len(o.patterns)),
		runes:    make(map[string][]rune, len(o.patterns)),
	}

	for _, e := range o.patterns {
		var err error
		if e.builtin {
			err = g.AddPredefinedPattern(e.predefined)
		} else {
			err = g.AddCustomPattern(e.key, e.chars)
		}
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("patterngen: %v", err))
	}
	return g
}

// AddPredefinedPattern registers the built-in pattern p under the key p.String().
func (g *Generator) AddPredefinedPattern(p Predefined) error {
	chars, ok := p.Chars()
	if !ok {
		g.logger.Debug("pattern rejected", logger.Key(p.String()), logger.Error(ErrUnknownPattern))
		return fmt.Errorf("%w: %q", ErrUnknownPattern, p)
	}
	return g.AddCustomPattern(p.String(), chars)
}

// AddCustomPattern registers chars under key. Keys are unique per generator,
// including keys taken by predefined patterns.
func (g *Generator) AddCustomPattern(key, chars string) error {
	var err error
	switch {
	case key == "":
		err = ErrEmptyKey
	case chars == "":
		err = fmt.Errorf("%w: key %q", ErrEmptyPattern, key)
	}
	if err != nil {
		g.logger.Debug("pattern rejected", logger.Key(key), logger.Error(err))
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.patterns[key]; exists {
		err = fmt.Errorf("%w: %q", ErrKeyExists, key)
		g.logger.Debug("pattern rejected", logger.Key(key), logger.Error(err))
		return err
	}

	g.keys = append(g.keys, key)
	g.patterns[key] = chars
	g.runes[key] = []rune(chars)
	return nil
}

// Generate returns a random string of Length characters drawn uniformly from
// the registered pattern. Exactly one pattern must be registered.
func (g *Generator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch len(g.keys) {
	case 0:
		g.logger.Debug("generate failed", logger.Error(ErrNoPatterns))
		return "", ErrNoPatterns
	case 1:
	default:
		// Combining several active patterns is not defined yet.
		err := fmt.Errorf("%w: %d registered", ErrMultiplePatterns, len(g.keys))
		g.logger.Debug("generate failed", logger.Error(err))
		return "", err
	}

	chars := g.runes[g.keys[0]]

	var b strings.Builder
	b.Grow(g.length)
	for range g.length {
		b.WriteRune(chars[g.source.IntN(len(chars))])
	}
	return b.String(), nil
}

// MustGenerate is like Generate but panics on error.
func (g *Generator) MustGenerate() string {
	s, err := g.Generate()
	if err != nil {
		panic(fmt.Sprintf("patterngen: %v", err))
	}
	return s
}

// Length returns the configured output length.
func (g *Generator) Length() int {
	return g.length
}

// Patterns returns a copy of the registered patterns keyed by name.
func (g *Generator) Patterns() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return maps.Clone(g.patterns)
}

// Keys returns the registered pattern keys in insertion order.
func (g *Generator) Keys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.keys)
}

// LogValue implements slog.LogValuer. Pattern contents are left out.
func (g *Generator) LogValue() slog.Value {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slog.GroupValue(
		logger.Length(g.length),
		slog.Any("keys", slices.Clone(g.keys)),
	)
}
