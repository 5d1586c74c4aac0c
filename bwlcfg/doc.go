// Package bwlcfg resolves per-function configuration from an environment
// snapshot and composes AWS resource names from it.
//
// # Settings
//
// [Settings] reads a [Snapshot] captured once per invocation:
//
//	settings := bwlcfg.New("ingest", bwlcfg.FromProcess())
//	region, err := settings.AWSRegion()
//
// The following keys are recognized:
//
//	| Variable                   | Kind       | Default                     |
//	|----------------------------|------------|-----------------------------|
//	| APPLICATION_NAME           | identifier | ""                          |
//	| GLOBAL_PREFIX              | identifier | ""                          |
//	| ENVIRONMENT                | identifier | ""                          |
//	| STACK_NAME                 | identifier | ""                          |
//	| AWS_REGION                 | identifier | required                    |
//	| DEBUG_MODE                 | flag       | off                         |
//	| SAFE_MODE                  | flag       | off                         |
//	| NOTIFICATIONS_ENABLED      | flag       | off                         |
//	| FIPS_MODE                  | flag       | on for regions with "gov"   |
//	| RUN_MODE                   | text       | lambda                      |
//	| NOTIFICATION_ARN           | raw        | ""                          |
//	| AWS_LAMBDA_LOG_GROUP_NAME  | raw        | ""                          |
//	| AWS_LAMBDA_LOG_STREAM_NAME | raw        | ""                          |
//
// Identifiers are lowercased. Flags accept on/off, true/false and yes/no in
// any case. Invalid input is reported as an [InvalidValueError].
//
// # Names
//
// Composed names join optional prefix segments in a fixed order (global
// prefix, application name, environment, stack name) with the bare name:
//
//	settings.BucketName("assets", bwlcfg.IncludeAll)       // test-myapp-dev-assets
//	settings.LegacySSMParamName("key", bwlcfg.IncludeAll)  // test-myapp-stack-a-ssm-key
//	settings.SSMParamName("key", bwlcfg.IncludeAll)        // /test/myapp/dev/stack-a/ssm/key
//	settings.SSMParamPath(bwlcfg.IncludeAll)               // /test/myapp/dev/stack-a/
package bwlcfg
