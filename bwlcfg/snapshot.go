package bwlcfg

import (
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
)

// Well-known snapshot keys.
const (
	KeyApplicationName      = "APPLICATION_NAME"
	KeyDebugMode            = "DEBUG_MODE"
	KeySafeMode             = "SAFE_MODE"
	KeyAWSRegion            = "AWS_REGION"
	KeyFIPSMode             = "FIPS_MODE"
	KeyGlobalPrefix         = "GLOBAL_PREFIX"
	KeyEnvironment          = "ENVIRONMENT"
	KeyStackName            = "STACK_NAME"
	KeyRunMode              = "RUN_MODE"
	KeyNotificationsEnabled = "NOTIFICATIONS_ENABLED"
	KeyNotificationARN      = "NOTIFICATION_ARN"
	KeyLogGroup             = "AWS_LAMBDA_LOG_GROUP_NAME"
	KeyLogStream            = "AWS_LAMBDA_LOG_STREAM_NAME"
)

// Snapshot is an immutable, case-sensitive view of environment-like configuration.
// The zero value is an empty snapshot.
type Snapshot struct {
	vars map[string]string
}

// NewSnapshot captures a copy of vars. Later changes to vars are not observed.
func NewSnapshot(vars map[string]string) Snapshot {
	return Snapshot{vars: maps.Clone(vars)}
}

// FromProcess captures the current process environment.
func FromProcess() Snapshot {
	return Snapshot{vars: env.ToMap(os.Environ())}
}

// Lookup returns the value for key and whether it was present at all.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Get returns the value for key, or the empty string when absent.
func (s Snapshot) Get(key string) string {
	return s.vars[key]
}

// Map returns a copy of the snapshot contents. It is never nil, so it can be
// handed to env.Options without falling back to the process environment.
func (s Snapshot) Map() map[string]string {
	m := make(map[string]string, len(s.vars))
	maps.Copy(m, s.vars)
	return m
}

// Len returns the number of keys in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}
