package logger

import (
	"context"
	"os"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

type Fields = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes Fields
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

var globalLogger Logger = &noopLogger{}

// Initialize installs the process-wide logger: structured stdout during
// development, an OTLP exporter in production.
func Initialize(collectorEndpoint, serviceName string, isProduction bool) error {
	var (
		l   Logger
		err error
	)
	if isProduction {
		l, err = newOtelLogger(collectorEndpoint, serviceName)
	} else {
		l, err = newStdoutLogger(serviceName)
	}
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

func newLogEntry(level LogLevel, message string, err error, attrs Fields) LogEntry {
	return LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	}
}

func Debug(ctx context.Context, message string, attrs Fields) {
	globalLogger.Log(ctx, newLogEntry(LogLevelDebug, message, nil, attrs))
}

func Info(ctx context.Context, message string, attrs Fields) {
	globalLogger.Log(ctx, newLogEntry(LogLevelInfo, message, nil, attrs))
}

func Warn(ctx context.Context, message string, attrs Fields) {
	globalLogger.Log(ctx, newLogEntry(LogLevelWarn, message, nil, attrs))
}

func Error(ctx context.Context, message string, err error, attrs Fields) {
	globalLogger.Log(ctx, newLogEntry(LogLevelError, message, err, attrs))
}

// Fatal logs the entry, flushes the logger and stops the process.
func Fatal(ctx context.Context, message string, err error, attrs Fields) {
	globalLogger.Log(ctx, newLogEntry(LogLevelFatal, message, err, attrs))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = globalLogger.Shutdown(shutdownCtx)
	os.Exit(1)
}

func Log(ctx context.Context, entry LogEntry) {
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}
