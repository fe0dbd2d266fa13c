package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type stdoutLogger struct {
	logger *slog.Logger
}

func newStdoutLogger(serviceName string) (Logger, error) {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})

	return &stdoutLogger{
		logger: slog.New(handler.WithAttrs([]slog.Attr{
			slog.String("service", serviceName),
		})),
	}, nil
}

func (l *stdoutLogger) Log(ctx context.Context, entry LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	attrs := make([]any, 0, len(entry.Attributes)*2+2)
	for key, value := range entry.Attributes {
		attrs = append(attrs, key, value)
	}
	if entry.Error != nil {
		attrs = append(attrs, "error", entry.Error.Error())
	}

	switch entry.Level {
	case LogLevelDebug:
		l.logger.DebugContext(ctx, entry.Message, attrs...)
	case LogLevelWarn:
		l.logger.WarnContext(ctx, entry.Message, attrs...)
	case LogLevelError, LogLevelFatal:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
	default:
		l.logger.InfoContext(ctx, entry.Message, attrs...)
	}
}

func (l *stdoutLogger) Shutdown(context.Context) error {
	return nil
}
