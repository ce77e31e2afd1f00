// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors shared by the other packages of this
// module.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "patterngen")),
//	)
//	log.Debug("pattern rejected", logger.Key("x"), logger.Error(err))
//
// Defaults are JSON output to stdout at INFO level.
package logger
