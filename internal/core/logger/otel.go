package logger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var severityByLevel = map[LogLevel]otellog.Severity{
	LogLevelDebug: otellog.SeverityDebug,
	LogLevelInfo:  otellog.SeverityInfo,
	LogLevelWarn:  otellog.SeverityWarn,
	LogLevelError: otellog.SeverityError,
	LogLevelFatal: otellog.SeverityFatal,
}

type otelLogger struct {
	logger   otellog.Logger
	provider *sdklog.LoggerProvider
}

func newOtelLogger(collectorEndpoint, serviceName string) (Logger, error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(
		collectorEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	exporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(provider)

	return &otelLogger{
		logger:   provider.Logger(serviceName),
		provider: provider,
	}, nil
}

func (l *otelLogger) Log(ctx context.Context, entry LogEntry) {
	var record otellog.Record
	record.SetTimestamp(entry.Timestamp)
	record.SetBody(otellog.StringValue(entry.Message))
	record.SetSeverityText(string(entry.Level))
	record.SetSeverity(severityByLevel[entry.Level])

	attrs := make([]otellog.KeyValue, 0, len(entry.Attributes)+1)
	for key, value := range entry.Attributes {
		attrs = append(attrs, toKeyValue(key, value))
	}
	if entry.Error != nil {
		attrs = append(attrs, otellog.String("error", entry.Error.Error()))
	}

	record.AddAttributes(attrs...)
	l.logger.Emit(ctx, record)
}

func toKeyValue(key string, value any) otellog.KeyValue {
	switch v := value.(type) {
	case string:
		return otellog.String(key, v)
	case int:
		return otellog.Int(key, v)
	case int64:
		return otellog.Int64(key, v)
	case float64:
		return otellog.Float64(key, v)
	case bool:
		return otellog.Bool(key, v)
	default:
		return otellog.String(key, fmt.Sprintf("%v", v))
	}
}

func (l *otelLogger) Shutdown(ctx context.Context) error {
	return l.provider.Shutdown(ctx)
}
