package bwlcfg

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// LogLevel is the coarse verbosity derived from debug mode.
type LogLevel int

const (
	// LogLevelNormal logs informational messages and above.
	LogLevelNormal LogLevel = iota
	// LogLevelVerbose also logs debug messages.
	LogLevelVerbose
)

func (l LogLevel) String() string {
	if l == LogLevelVerbose {
		return "verbose"
	}
	return "normal"
}

// ZapLevel maps the coarse level onto the zap level used by the logger.
func (l LogLevel) ZapLevel() zapcore.Level {
	if l == LogLevelVerbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// RunMode describes where the function executes.
type RunMode string

const (
	// RunModeLambda is the managed cloud execution mode and the default.
	RunModeLambda RunMode = "lambda"
	// RunModeLocal is a developer machine or test harness.
	RunModeLocal RunMode = "local"
)

// IsLocal reports whether the mode runs outside the managed cloud environment.
func (m RunMode) IsLocal() bool {
	return m == RunModeLocal
}

// Settings resolves typed configuration for one function invocation from a
// Snapshot. Every accessor is recomputed from the snapshot on each call.
type Settings struct {
	name string
	snap Snapshot
}

// New creates Settings for the named component.
func New(name string, snap Snapshot) *Settings {
	return &Settings{name: name, snap: snap}
}

// Name returns the component (function) name given at construction.
func (s *Settings) Name() string {
	return s.name
}

// Snapshot returns the snapshot the settings were built from.
func (s *Settings) Snapshot() Snapshot {
	return s.snap
}

func (s *Settings) lower(key string) string {
	return strings.ToLower(s.snap.Get(key))
}

// ApplicationName returns APPLICATION_NAME, lowercased.
func (s *Settings) ApplicationName() string {
	return s.lower(KeyApplicationName)
}

// DebugMode returns DEBUG_MODE as a flag, false when unset.
func (s *Settings) DebugMode() (bool, error) {
	return s.toggle(KeyDebugMode, false)
}

// LogLevel returns LogLevelVerbose when debug mode is on.
func (s *Settings) LogLevel() (LogLevel, error) {
	debug, err := s.DebugMode()
	if err != nil {
		return LogLevelNormal, err
	}
	if debug {
		return LogLevelVerbose, nil
	}
	return LogLevelNormal, nil
}

// SafeMode returns SAFE_MODE as a flag, false when unset.
func (s *Settings) SafeMode() (bool, error) {
	return s.toggle(KeySafeMode, false)
}

// AWSRegion returns AWS_REGION, lowercased. There is no default region.
func (s *Settings) AWSRegion() (string, error) {
	region := s.lower(KeyAWSRegion)
	if region == "" {
		return "", invalidValue(KeyAWSRegion, "", "region is required")
	}
	return region, nil
}

// RunMode returns RUN_MODE, lowercased, defaulting to RunModeLambda.
func (s *Settings) RunMode() RunMode {
	mode := s.lower(KeyRunMode)
	if mode == "" {
		return RunModeLambda
	}
	return RunMode(mode)
}

// FIPSMode reports whether FIPS endpoints must be used.
//
// When FIPS_MODE is unset the mode is detected from the region: any region
// containing "gov" is treated as a FIPS partition. This is a name heuristic,
// not a partition lookup. An explicit FIPS_MODE is rejected when RUN_MODE is
// local.
func (s *Settings) FIPSMode() (bool, error) {
	v, ok := s.snap.Lookup(KeyFIPSMode)
	if !ok || v == "" {
		region, err := s.AWSRegion()
		if err != nil {
			return false, err
		}
		return strings.Contains(region, "gov"), nil
	}

	if mode := s.RunMode(); mode.IsLocal() {
		return false, invalidValue(KeyFIPSMode, v, "cannot be set when "+KeyRunMode+" is "+string(mode))
	}
	return ParseToggle(KeyFIPSMode, v)
}

// GlobalPrefix returns GLOBAL_PREFIX, lowercased.
func (s *Settings) GlobalPrefix() string {
	return s.lower(KeyGlobalPrefix)
}

// Environment returns ENVIRONMENT, lowercased.
func (s *Settings) Environment() string {
	return s.lower(KeyEnvironment)
}

// StackName returns STACK_NAME, lowercased.
func (s *Settings) StackName() string {
	return s.lower(KeyStackName)
}

// LogGroup returns the log group name as given.
func (s *Settings) LogGroup() string {
	return s.snap.Get(KeyLogGroup)
}

// LogStream returns the log stream name as given.
func (s *Settings) LogStream() string {
	return s.snap.Get(KeyLogStream)
}

// NotificationsEnabled returns NOTIFICATIONS_ENABLED as a flag, false when unset.
func (s *Settings) NotificationsEnabled() (bool, error) {
	return s.toggle(KeyNotificationsEnabled, false)
}

// NotificationARN returns NOTIFICATION_ARN unmodified; ARNs are case-sensitive.
func (s *Settings) NotificationARN() string {
	return s.snap.Get(KeyNotificationARN)
}
