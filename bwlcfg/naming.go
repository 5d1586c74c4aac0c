package bwlcfg

import (
	"strings"

	"github.com/samber/lo"
)

// ssmLiteral is the fixed segment placed between the prefix segments and the
// parameter name in SSM identifiers.
const ssmLiteral = "ssm"

// Include selects which optional prefix segments a composed name carries.
// A selected segment whose resolved value is empty is dropped.
type Include struct {
	GlobalPrefix    bool
	ApplicationName bool
	Environment     bool
	StackName       bool
}

// IncludeAll selects every segment.
var IncludeAll = Include{GlobalPrefix: true, ApplicationName: true, Environment: true, StackName: true}

// segment identifies one optional prefix segment.
type segment int

const (
	segGlobalPrefix segment = iota
	segApplicationName
	segEnvironment
	segStackName
)

// canonicalOrder is the only order segments are ever emitted in.
var canonicalOrder = []segment{segGlobalPrefix, segApplicationName, segEnvironment, segStackName}

func (inc Include) has(seg segment) bool {
	switch seg {
	case segGlobalPrefix:
		return inc.GlobalPrefix
	case segApplicationName:
		return inc.ApplicationName
	case segEnvironment:
		return inc.Environment
	case segStackName:
		return inc.StackName
	default:
		return false
	}
}

func (s *Settings) segmentValue(seg segment) string {
	switch seg {
	case segGlobalPrefix:
		return s.GlobalPrefix()
	case segApplicationName:
		return s.ApplicationName()
	case segEnvironment:
		return s.Environment()
	case segStackName:
		return s.StackName()
	default:
		return ""
	}
}

// segments returns the resolved values of the segments that a builder supports
// and inc selects, in canonical order. Empty values are dropped.
func (s *Settings) segments(inc Include, supported ...segment) []string {
	out := make([]string, 0, len(canonicalOrder))
	for _, seg := range canonicalOrder {
		if !lo.Contains(supported, seg) || !inc.has(seg) {
			continue
		}
		out = append(out, s.segmentValue(seg))
	}
	return lo.Compact(out)
}

// layout joins prefix segments and trailing parts into one identifier.
type layout struct {
	sep    string
	rooted bool
}

var (
	flatLayout = layout{sep: "-"}
	pathLayout = layout{sep: "/", rooted: true}
)

// join concatenates segs and tail with the layout separator. Empty tail parts
// are dropped like empty segments. A rooted layout with an empty tail yields a
// directory path that ends in the separator.
func (l layout) join(segs []string, tail ...string) string {
	parts := append(append([]string{}, segs...), lo.Compact(tail)...)
	joined := strings.Join(parts, l.sep)
	if !l.rooted {
		return joined
	}
	if len(lo.Compact(tail)) == 0 {
		if joined == "" {
			return l.sep
		}
		return l.sep + joined + l.sep
	}
	return l.sep + joined
}

// BucketName composes an S3 bucket name:
//
//	{global_prefix}-{application_name}-{environment}-{name}
//
// inc.StackName is ignored. With prefix "test", application "myappname" and
// environment "dev", BucketName("testbucket1", IncludeAll) returns
// "test-myappname-dev-testbucket1".
func (s *Settings) BucketName(name string, inc Include) string {
	segs := s.segments(inc, segGlobalPrefix, segApplicationName, segEnvironment)
	return flatLayout.join(segs, name)
}

// LegacySSMParamName composes a flat, pre-hierarchy SSM parameter name:
//
//	{global_prefix}-{application_name}-{stack_name}-ssm-{name}
//
// inc.Environment is ignored.
func (s *Settings) LegacySSMParamName(name string, inc Include) string {
	segs := s.segments(inc, segGlobalPrefix, segApplicationName, segStackName)
	return flatLayout.join(segs, ssmLiteral, name)
}

// SSMParamName composes a hierarchical SSM parameter name:
//
//	/{global_prefix}/{application_name}/{environment}/{stack_name}/ssm/{name}
//
// An empty name yields the path prefix instead, without the ssm segment and
// terminated by a slash, e.g. "/test/myappname/dev/stack-a/".
func (s *Settings) SSMParamName(name string, inc Include) string {
	segs := s.segments(inc, canonicalOrder...)
	if name == "" {
		return pathLayout.join(segs)
	}
	return pathLayout.join(segs, ssmLiteral, name)
}

// SSMParamPath returns the path prefix used to list parameters by path.
func (s *Settings) SSMParamPath(inc Include) string {
	return s.SSMParamName("", inc)
}
