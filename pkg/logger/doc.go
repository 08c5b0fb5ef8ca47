// Package logger builds configured log/slog loggers for guardkit
// applications.
//
// The factory defaults to JSON output at INFO level, which suits log
// aggregation in production. Options switch to human-readable text output,
// adjust the level, redirect output, or attach static attributes to every
// record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDebug(),
//	    logger.WithAttr(slog.String("service", "checkout")),
//	)
//	reg := guardkit.NewRegistry(guardkit.WithLogger(log))
package logger
