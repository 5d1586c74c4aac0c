package bwlcore

import (
	"context"

	"github.com/aws-observability/aws-otel-go/exporters/xrayudp"
	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	lambdadetector "go.opentelemetry.io/contrib/detectors/aws/lambda"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracingEnvironment selects the trace exporter.
//
//	| Variable          | Default | Description                           |
//	|-------------------|---------|---------------------------------------|
//	| OTEL_EXPORTER     | none    | "none", "stdout" or "xrayudp"         |
//	| OTEL_SDK_DISABLED | false   | Disables tracing regardless of above  |
type TracingEnvironment struct {
	Exporter string `env:"OTEL_EXPORTER" envDefault:"none"`
	Disabled bool   `env:"OTEL_SDK_DISABLED"`
}

// ParseTracingEnvironment reads the tracing settings from snap.
func ParseTracingEnvironment(snap bwlcfg.Snapshot) (TracingEnvironment, error) {
	te, err := env.ParseAsWithOptions[TracingEnvironment](env.Options{Environment: snap.Map()})
	if err != nil {
		return te, errors.Wrap(err, "failed to parse tracing environment")
	}
	return te, nil
}

// ShutdownFunc flushes pending spans. It must run before the function exits.
type ShutdownFunc func(context.Context) error

// NewTracerProvider builds a tracer provider from the snapshot. Nothing is
// registered globally; pass the result to WithTracerProvider.
//
// Spans are exported synchronously; the sandbox may be frozen between invocations.
func NewTracerProvider(ctx context.Context, snap bwlcfg.Snapshot, serviceName string) (trace.TracerProvider, ShutdownFunc, error) {
	te, err := ParseTracingEnvironment(snap)
	if err != nil {
		return nil, nil, err
	}
	if te.Disabled || te.Exporter == "none" {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := newExporter(ctx, te.Exporter)
	if err != nil {
		return nil, nil, err
	}
	res, err := newResource(ctx, te.Exporter, serviceName)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
		sdktrace.WithIDGenerator(xray.NewIDGenerator()),
	)
	return tp, tp.Shutdown, nil
}

func newExporter(ctx context.Context, exporterType string) (sdktrace.SpanExporter, error) {
	switch exporterType {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "xrayudp":
		return xrayudp.NewSpanExporter(ctx)
	default:
		return nil, errors.Newf("unsupported OTEL_EXPORTER: %q (supported: none, stdout, xrayudp)", exporterType)
	}
}

// newResource describes the function. Outside Lambda only the service name is known.
func newResource(ctx context.Context, exporterType, serviceName string) (*resource.Resource, error) {
	named := resource.NewSchemaless(attribute.String("service.name", serviceName))
	if exporterType != "xrayudp" {
		return named, nil
	}

	detected, err := lambdadetector.NewResourceDetector().Detect(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "detect lambda resource")
	}
	res, err := resource.Merge(detected, named)
	if err != nil {
		return nil, errors.Wrap(err, "merge lambda resource")
	}
	return res, nil
}
