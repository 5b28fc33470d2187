// Package logger builds *slog.Logger values for services and libraries that
// want consistent structured logging without repeating handler setup.
//
// New takes functional options to pick the output format, the minimum level,
// static attributes and an optional rotating log file:
//
//   - FormatJSON uses slog.JSONHandler.
//   - FormatText uses github.com/lmittmann/tint for compact, colored output.
//   - WithFile adds a JSON copy of every record written through
//     gopkg.in/natefinch/lumberjack.v2, rotated by size. Release it with Close.
//
// Helper constructors in attr.go (Parameter, Mode, Kind, FailureCount, Error,
// Errors, ...) keep attribute keys identical across packages. Error and Errors
// return an empty Attr for nil errors, so they can be passed unconditionally:
//
//	log := logger.New(logger.WithDevelopment("billing"))
//	log.Debug("validation failure recorded",
//	    logger.Parameter("amount"),
//	    logger.Error(err),
//	)
package logger
