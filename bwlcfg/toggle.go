package bwlcfg

import "strings"

// ParseToggle parses a boolean flag value. The tokens on, true and yes map to
// true; off, false and no map to false. Matching is case-insensitive and any
// other value is an InvalidValueError naming key.
func ParseToggle(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, invalidValue(key, value, "expected one of on/off, true/false, yes/no")
	}
}

// toggle resolves key as a flag, returning def when the key is absent or empty.
func (s *Settings) toggle(key string, def bool) (bool, error) {
	v, ok := s.snap.Lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	return ParseToggle(key, v)
}
