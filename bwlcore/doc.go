// Package bwlcore provides the per-invocation runtime of a Lambda function:
// resolved settings, a structured logger, lazily initialized AWS SDK clients,
// SSM parameter lookups by composed name and SNS notifications.
//
// # Quick Start
//
//	core, err := bwlcore.New("ingest")
//	if err != nil {
//	    return err
//	}
//	if err := core.InitSSM(ctx); err != nil {
//	    return err
//	}
//	token, err := core.GetSSMParameter(ctx, "api-token", bwlcore.ParamOptions{
//	    Include:   bwlcfg.Include{GlobalPrefix: true, ApplicationName: true},
//	    Encrypted: true,
//	})
//
// # AWS Clients
//
// Each Init method resolves AWS_REGION and FIPS mode before building its
// client. In FIPS mode S3 and Lambda are pointed at their -fips endpoints;
// EC2, SSM, SNS and RDS only log that FIPS mode is ignored because their
// FIPS support is region-dependent.
//
// The AWS configuration is loaded once and instrumented with OpenTelemetry
// through the tracer provider and propagator given to [New]. Without
// [WithTracerProvider] a no-op provider is used. [NewTracerProvider] builds
// one from OTEL_EXPORTER.
//
// # Notifications
//
// [Core.SendNotification] publishes to NOTIFICATION_ARN with MessageStructure
// "json":
//
//	{"default": "{\"type\":\"...\",\"lambda\":\"<name>\",\"message\":\"...\"}"}
//
// The dispatcher function reads it back with [DecodeNotification].
//
// # Dependency Injection
//
// [Module] wires everything into a [go.uber.org/fx] application.
package bwlcore
