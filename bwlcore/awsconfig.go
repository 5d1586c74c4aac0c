package bwlcore

import (
	"context"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

const awsConfigTimeout = 10 * time.Second

// clientConfig returns the AWS config for a new client in the resolved region.
// The base configuration is loaded on first use unless one was supplied, and
// is instrumented once with the Core's tracer provider and propagator.
func (c *Core) clientConfig(ctx context.Context) (aws.Config, error) {
	region, err := c.settings.AWSRegion()
	if err != nil {
		return aws.Config{}, err
	}

	if c.awsCfg == nil {
		loadCtx, cancel := context.WithTimeout(ctx, awsConfigTimeout)
		defer cancel()

		cfg, err := awsconfig.LoadDefaultConfig(loadCtx, awsconfig.WithRegion(region))
		if err != nil {
			return aws.Config{}, errors.Wrap(err, "load AWS config")
		}
		c.awsCfg = &cfg
	}
	if !c.awsInstrumented {
		cfg := c.awsCfg.Copy()
		cfg.APIOptions = slices.Clone(cfg.APIOptions)
		otelaws.AppendMiddlewares(&cfg.APIOptions,
			otelaws.WithTracerProvider(c.tracer),
			otelaws.WithTextMapPropagator(c.propagator),
		)
		c.awsCfg = &cfg
		c.awsInstrumented = true
	}

	cfg := c.awsCfg.Copy()
	cfg.Region = region
	return cfg, nil
}
