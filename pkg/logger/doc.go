// Package logger builds *slog.Logger values with functional options and
// keeps attribute names consistent across packages.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler so registered ContextExtractor callbacks can add request-scoped
// attributes (for example the negotiated language) on every record.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("binder")),
//	)
//	log.WarnContext(ctx, "request rejected", logger.ValidationErrors(errs))
//
// NewFromConfig reads LOG_LEVEL and LOG_FORMAT through the config package.
package logger
