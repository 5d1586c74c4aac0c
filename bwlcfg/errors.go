package bwlcfg

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InvalidValueError reports a configuration value that failed validation.
// It is never recovered inside this package; callers decide whether to abort
// the invocation or fall back.
type InvalidValueError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid value for %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Reason)
}

func invalidValue(key, value, reason string) error {
	return errors.WithStack(&InvalidValueError{Key: key, Value: value, Reason: reason})
}

// IsInvalidValue reports whether err carries an InvalidValueError anywhere in its chain.
func IsInvalidValue(err error) bool {
	var ive *InvalidValueError
	return errors.As(err, &ive)
}
