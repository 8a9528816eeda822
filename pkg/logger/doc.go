// Package logger builds *slog.Logger values for the form engine and its tools.
//
// New applies functional options (format, level, output, static attributes)
// and can inject values stored in a context.Context into every record written
// through the *Context logging methods:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formcheck"),
//	    logger.WithContextExtractors(submissionID),
//	)
//	log.InfoContext(ctx, "form rejected", logger.Fields(invalid))
//
// Attribute helpers in attr.go keep key names consistent. Helpers that take
// optional values return an empty slog.Attr, which slog drops, so callers do
// not need nil checks.
package logger
