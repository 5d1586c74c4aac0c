package bwlcore

import (
	"context"

	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger whose level follows DEBUG_MODE, named after
// the function.
func NewLogger(settings *bwlcfg.Settings) (*zap.Logger, error) {
	logger, err := newBaseLogger(settings)
	if err != nil {
		return nil, err
	}
	return scopeLogger(logger, settings), nil
}

func newBaseLogger(settings *bwlcfg.Settings) (*zap.Logger, error) {
	level, err := settings.LogLevel()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.ZapLevel())
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// scopeLogger names the logger after the function and attaches its log identity.
func scopeLogger(logger *zap.Logger, settings *bwlcfg.Settings) *zap.Logger {
	if name := strcase.ToKebab(settings.Name()); name != "" {
		logger = logger.Named(name)
	}

	var fields []zap.Field
	if group := settings.LogGroup(); group != "" {
		fields = append(fields, zap.String("log_group", group))
	}
	if stream := settings.LogStream(); stream != "" {
		fields = append(fields, zap.String("log_stream", stream))
	}
	return logger.With(fields...)
}

// LogCtx returns the Core's logger with trace_id and span_id attached when ctx
// carries a valid span.
func (c *Core) LogCtx(ctx context.Context) *zap.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return c.logger
	}
	return c.logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// LogError logs err with trace context and records it on the active span.
func (c *Core) LogError(ctx context.Context, msg string, err error) {
	c.LogCtx(ctx).Error(msg, zap.Error(err))

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.RecordError(err)
	}
}
