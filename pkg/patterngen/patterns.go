package patterngen

import (
	"fmt"
	"maps"
	"strings"
)

// Predefined identifies one of the built-in character classes.
type Predefined string

// Built-in character classes.
const (
	Lowercase Predefined = "LOWERCASE"
	Uppercase Predefined = "UPPERCASE"
	Digits    Predefined = "DIGITS"
)

// DefaultLength is the output length used when WithLength is not given.
const DefaultLength = 16

var predefinedPatterns = map[Predefined]string{
	Lowercase: "abcdefghijklmnopqrstuvwxyz",
	Uppercase: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	Digits:    "0123456789",
}

func (p Predefined) String() string {
	return string(p)
}

// Chars returns the character set of p and whether p is a known identifier.
func (p Predefined) Chars() (string, bool) {
	chars, ok := predefinedPatterns[p]
	return chars, ok
}

// ParsePredefined resolves a case-insensitive identifier name such as "digits".
func ParsePredefined(name string) (Predefined, error) {
	p := Predefined(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := predefinedPatterns[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PredefinedPatterns returns a copy of the built-in pattern table.
func PredefinedPatterns() map[Predefined]string {
	return maps.Clone(predefinedPatterns)
}
