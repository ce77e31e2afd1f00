package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Key records a pattern key under the key "pattern_key".
func Key(k string) slog.Attr {
	return slog.String("pattern_key", k)
}

// Length records an output length under the key "length".
func Length(n int) slog.Attr {
	return slog.Int("length", n)
}
