package bwlcore

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Core bundles the settings, logger and AWS clients of one function invocation.
// Clients are nil until the matching Init method is called.
type Core struct {
	name     string
	settings *bwlcfg.Settings
	logger   *zap.Logger

	awsCfg          *aws.Config
	awsInstrumented bool
	tracer          trace.TracerProvider
	propagator      propagation.TextMapPropagator

	ec2    *ec2.Client
	lambda *lambda.Client
	s3     *s3.Client
	rds    *rds.Client
	ssm    SSMAPI
	sns    SNSAPI
}

type options struct {
	snapshot   *bwlcfg.Snapshot
	logger     *zap.Logger
	awsCfg     *aws.Config
	tracer     trace.TracerProvider
	propagator propagation.TextMapPropagator
	ssm        SSMAPI
	sns        SNSAPI
}

// Option configures a Core.
type Option func(*options)

// WithSnapshot resolves settings from snap instead of the process environment.
func WithSnapshot(snap bwlcfg.Snapshot) Option {
	return func(o *options) { o.snapshot = &snap }
}

// WithLogger sends log output to logger instead of a logger built from the settings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithAWSConfig uses cfg as the base for every client instead of loading the
// default configuration. The client region is still taken from AWS_REGION and
// the config is instrumented like a loaded one.
func WithAWSConfig(cfg aws.Config) Option {
	return func(o *options) { o.awsCfg = &cfg }
}

// WithTracerProvider instruments AWS clients with tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// WithPropagator sets the propagator used by the AWS client instrumentation.
func WithPropagator(prop propagation.TextMapPropagator) Option {
	return func(o *options) { o.propagator = prop }
}

// WithSSMClient uses client for parameter lookups. InitSSM replaces it.
func WithSSMClient(client SSMAPI) Option {
	return func(o *options) { o.ssm = client }
}

// WithSNSClient uses client for notifications. InitSNS replaces it.
func WithSNSClient(client SNSAPI) Option {
	return func(o *options) { o.sns = client }
}

// New creates the Core for the named function. It fails when the settings
// needed to configure logging are invalid.
func New(name string, opts ...Option) (*Core, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	snap := bwlcfg.FromProcess()
	if o.snapshot != nil {
		snap = *o.snapshot
	}
	settings := bwlcfg.New(name, snap)

	logger := o.logger
	if logger == nil {
		var err error
		if logger, err = NewLogger(settings); err != nil {
			return nil, err
		}
	} else {
		logger = scopeLogger(logger, settings)
	}

	if o.tracer == nil {
		o.tracer = noop.NewTracerProvider()
	}
	if o.propagator == nil {
		o.propagator = xray.Propagator{}
	}

	return &Core{
		name:       name,
		settings:   settings,
		logger:     logger,
		awsCfg:     o.awsCfg,
		tracer:     o.tracer,
		propagator: o.propagator,
		ssm:        o.ssm,
		sns:        o.sns,
	}, nil
}

// Name returns the function name the Core was created for.
func (c *Core) Name() string { return c.name }

// Settings returns the settings resolver.
func (c *Core) Settings() *bwlcfg.Settings { return c.settings }

// Log returns the function logger.
func (c *Core) Log() *zap.Logger { return c.logger }

// EC2 returns the EC2 client, or nil before InitEC2.
func (c *Core) EC2() *ec2.Client { return c.ec2 }

// Lambda returns the Lambda client, or nil before InitLambda.
func (c *Core) Lambda() *lambda.Client { return c.lambda }

// S3 returns the S3 client, or nil before InitS3.
func (c *Core) S3() *s3.Client { return c.s3 }

// RDS returns the RDS client, or nil before InitRDS.
func (c *Core) RDS() *rds.Client { return c.rds }

// SSM returns the SSM client, or nil before InitSSM or WithSSMClient.
func (c *Core) SSM() SSMAPI { return c.ssm }

// SNS returns the SNS client, or nil before InitSNS or WithSNSClient.
func (c *Core) SNS() SNSAPI { return c.sns }

var errNotInitialized = errors.New("client not initialized")
