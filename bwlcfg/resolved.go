package bwlcfg

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Resolved holds every setting evaluated once. It is a point-in-time copy and
// is not kept in sync with the Settings it came from.
type Resolved struct {
	Name                 string   `yaml:"name"`
	ApplicationName      string   `yaml:"application_name"`
	DebugMode            bool     `yaml:"debug_mode"`
	LogLevel             LogLevel `yaml:"-"`
	SafeMode             bool     `yaml:"safe_mode"`
	AWSRegion            string   `yaml:"aws_region" validate:"required,lowercase"`
	FIPSMode             bool     `yaml:"fips_mode"`
	RunMode              RunMode  `yaml:"run_mode"`
	GlobalPrefix         string   `yaml:"global_prefix"`
	Environment          string   `yaml:"environment"`
	StackName            string   `yaml:"stack_name"`
	LogGroup             string   `yaml:"log_group"`
	LogStream            string   `yaml:"log_stream"`
	NotificationsEnabled bool     `yaml:"notifications_enabled"`
	NotificationARN      string   `yaml:"notification_arn" validate:"required_if=NotificationsEnabled true"`
}

// validationKeys maps Resolved fields to the snapshot key they came from.
var validationKeys = map[string]string{
	"AWSRegion":       KeyAWSRegion,
	"NotificationARN": KeyNotificationARN,
}

// Resolve evaluates every accessor and validates the combination. The first
// accessor failure is returned as is; cross-field failures are reported as
// InvalidValueError for the offending key.
func (s *Settings) Resolve() (Resolved, error) {
	r := Resolved{
		Name:            s.Name(),
		ApplicationName: s.ApplicationName(),
		RunMode:         s.RunMode(),
		GlobalPrefix:    s.GlobalPrefix(),
		Environment:     s.Environment(),
		StackName:       s.StackName(),
		LogGroup:        s.LogGroup(),
		LogStream:       s.LogStream(),
		NotificationARN: s.NotificationARN(),
	}

	var err error
	if r.DebugMode, err = s.DebugMode(); err != nil {
		return Resolved{}, err
	}
	if r.LogLevel, err = s.LogLevel(); err != nil {
		return Resolved{}, err
	}
	if r.SafeMode, err = s.SafeMode(); err != nil {
		return Resolved{}, err
	}
	if r.AWSRegion, err = s.AWSRegion(); err != nil {
		return Resolved{}, err
	}
	if r.FIPSMode, err = s.FIPSMode(); err != nil {
		return Resolved{}, err
	}
	if r.NotificationsEnabled, err = s.NotificationsEnabled(); err != nil {
		return Resolved{}, err
	}

	if err := newValidator().Struct(r); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			e := validationErrs[0]
			key := validationKeys[e.StructField()]
			return Resolved{}, invalidValue(key, fmt.Sprint(e.Value()), formatValidationError(e))
		}
		return Resolved{}, errors.Wrap(err, "validate settings")
	}

	return r, nil
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return "is required"
	case "lowercase":
		return "must be lowercase"
	default:
		return strings.TrimSpace(fmt.Sprintf("failed %s %s", e.Tag(), e.Param()))
	}
}
