package bwlcore

import (
	"context"
	"time"

	"github.com/basewarphq/bwlambda/bwlcfg"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the snapshot, settings, logger, tracer provider and Core
// for the named function:
//
//	fx.New(
//	    bwlcore.Module("ingest", bwlcfg.FromProcess()),
//	    fx.Invoke(func(c *bwlcore.Core) error { return c.InitS3(ctx) }),
//	)
func Module(name string, snap bwlcfg.Snapshot) fx.Option {
	return fx.Module("bwlcore",
		fx.Supply(snap),
		fx.Provide(
			func(snap bwlcfg.Snapshot) *bwlcfg.Settings { return bwlcfg.New(name, snap) },
			provideLogger,
			provideTracerProvider,
			func() propagation.TextMapPropagator { return xray.Propagator{} },
			provideCore,
		),
	)
}

const tracingSetupTimeout = 5 * time.Second

func provideLogger(lc fx.Lifecycle, settings *bwlcfg.Settings) (*zap.Logger, error) {
	logger, err := newBaseLogger(settings)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideTracerProvider(lc fx.Lifecycle, settings *bwlcfg.Settings) (trace.TracerProvider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), tracingSetupTimeout)
	defer cancel()

	tp, shutdown, err := NewTracerProvider(ctx, settings.Snapshot(), settings.Name())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(shutdown))
	return tp, nil
}

func provideCore(
	settings *bwlcfg.Settings,
	logger *zap.Logger,
	tp trace.TracerProvider,
	prop propagation.TextMapPropagator,
) (*Core, error) {
	return New(settings.Name(),
		WithSnapshot(settings.Snapshot()),
		WithLogger(logger),
		WithTracerProvider(tp),
		WithPropagator(prop),
	)
}
