package log

import (
	"log/slog"

	"github.com/lmittmann/tint"
)

func setupSLog(level Severity) {
	// Write slog records to the same file as our own adapter, if possible.
	output := StderrAdapter
	if fileAdapter, ok := adapter.(*SimpleFileAdapter); ok {
		output = fileAdapter
	}

	handlerLogLevel := level.toSLogLevel()
	logHandler := tint.NewHandler(output.File, &tint.Options{
		AddSource:  true,
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(output.File),
	})

	// Set as default logger.
	slog.SetDefault(slog.New(logHandler))
	// Set actual log level.
	slog.SetLogLoggerLevel(handlerLogLevel)
}

func (s Severity) toSLogLevel() slog.Level {
	// Convert to slog level.
	switch s {
	case TraceLevel:
		return slog.LevelDebug
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarningLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	case CriticalLevel:
		return slog.LevelError
	}
	// Failed to convert, return default log level
	return slog.LevelWarn
}
