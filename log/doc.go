// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Time layout, caller information, level, and output format are applied at
// logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parsed", slog.String("file", path))
//	logger.Error("conversion failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Adding Attributes
//
// [Logger.With] returns a logger that includes the given attributes in
// every message:
//
//	logger = logger.With(slog.String("file", path))
//	logger.Info("parsed") // includes file=...
//
// # Context-Aware Logging
//
// Each level has a context-aware and a context-unaware variant. The latter
// use [DefaultContextProvider], which returns [context.TODO] by default.
//
// # Supported Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn], and [LevelError].
// Messages below the configured level are discarded.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty], JSON becomes an
// indented block and text a single line, both colorized on terminals.
package log
