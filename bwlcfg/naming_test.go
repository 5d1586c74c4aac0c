package bwlcfg_test

import (
	"testing"

	"github.com/basewarphq/bwlambda/bwlcfg"
)

type nameCase struct {
	include bwlcfg.Include
	name    string
	want    string
}

func namingSettings() *bwlcfg.Settings {
	return bwlcfg.New("test", bwlcfg.NewSnapshot(map[string]string{
		"GLOBAL_PREFIX":    "test",
		"APPLICATION_NAME": "myappname",
		"ENVIRONMENT":      "dev",
		"STACK_NAME":       "stack-a",
	}))
}

func TestBucketName(t *testing.T) {
	t.Parallel()
	settings := namingSettings()

	tests := []nameCase{
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: true}, "testbucket1", "test-myappname-dev-testbucket1"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: false}, "testbucket2", "test-myappname-testbucket2"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: true}, "testbucket3", "test-dev-testbucket3"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: false}, "testbucket4", "test-testbucket4"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: true}, "testbucket5", "myappname-dev-testbucket5"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: false}, "testbucket6", "myappname-testbucket6"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: true}, "testbucket7", "dev-testbucket7"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: false}, "testbucket8", "testbucket8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := settings.BucketName(tt.name, tt.include); got != tt.want {
				t.Errorf("BucketName(%q, %+v) = %q, want %q", tt.name, tt.include, got, tt.want)
			}
		})
	}
}

func TestBucketName_IgnoresStackName(t *testing.T) {
	t.Parallel()
	got := namingSettings().BucketName("testbucket1", bwlcfg.IncludeAll)
	if got != "test-myappname-dev-testbucket1" {
		t.Errorf("BucketName() = %q, want %q", got, "test-myappname-dev-testbucket1")
	}
}

func TestLegacySSMParamName(t *testing.T) {
	t.Parallel()
	settings := namingSettings()

	tests := []nameCase{
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, StackName: true}, "param1", "test-myappname-stack-a-ssm-param1"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, StackName: false}, "param2", "test-myappname-ssm-param2"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, StackName: true}, "param3", "test-stack-a-ssm-param3"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, StackName: false}, "param4", "test-ssm-param4"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, StackName: true}, "param5", "myappname-stack-a-ssm-param5"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, StackName: false}, "param6", "myappname-ssm-param6"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, StackName: true}, "param7", "stack-a-ssm-param7"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, StackName: false}, "param8", "ssm-param8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := settings.LegacySSMParamName(tt.name, tt.include); got != tt.want {
				t.Errorf("LegacySSMParamName(%q, %+v) = %q, want %q", tt.name, tt.include, got, tt.want)
			}
		})
	}
}

func TestLegacySSMParamName_IgnoresEnvironment(t *testing.T) {
	t.Parallel()
	got := namingSettings().LegacySSMParamName("param1", bwlcfg.IncludeAll)
	if got != "test-myappname-stack-a-ssm-param1" {
		t.Errorf("LegacySSMParamName() = %q, want %q", got, "test-myappname-stack-a-ssm-param1")
	}
}

func TestSSMParamName(t *testing.T) {
	t.Parallel()
	settings := namingSettings()

	tests := []nameCase{
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: true, StackName: true}, "param1", "/test/myappname/dev/stack-a/ssm/param1"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: true, StackName: false}, "param2", "/test/myappname/dev/ssm/param2"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: false, StackName: true}, "param3", "/test/myappname/stack-a/ssm/param3"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: false, StackName: false}, "param4", "/test/myappname/ssm/param4"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: true, StackName: true}, "param5", "/test/dev/stack-a/ssm/param5"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: true, StackName: false}, "param6", "/test/dev/ssm/param6"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: false, StackName: true}, "param7", "/test/stack-a/ssm/param7"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: false, StackName: false}, "param8", "/test/ssm/param8"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: true, StackName: true}, "param9", "/myappname/dev/stack-a/ssm/param9"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: true, StackName: false}, "param10", "/myappname/dev/ssm/param10"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: false, StackName: true}, "param11", "/myappname/stack-a/ssm/param11"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: false, StackName: false}, "param12", "/myappname/ssm/param12"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: true, StackName: true}, "param13", "/dev/stack-a/ssm/param13"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: true, StackName: false}, "param14", "/dev/ssm/param14"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: false, StackName: true}, "param15", "/stack-a/ssm/param15"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: false, StackName: false}, "param16", "/ssm/param16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := settings.SSMParamName(tt.name, tt.include); got != tt.want {
				t.Errorf("SSMParamName(%q, %+v) = %q, want %q", tt.name, tt.include, got, tt.want)
			}
		})
	}
}

func TestSSMParamName_WithoutName(t *testing.T) {
	t.Parallel()
	settings := namingSettings()

	tests := []nameCase{
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: true, StackName: true}, "", "/test/myappname/dev/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: true, StackName: false}, "", "/test/myappname/dev/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: false, StackName: true}, "", "/test/myappname/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: true, Environment: false, StackName: false}, "", "/test/myappname/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: true, StackName: true}, "", "/test/dev/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: true, StackName: false}, "", "/test/dev/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: false, StackName: true}, "", "/test/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: true, ApplicationName: false, Environment: false, StackName: false}, "", "/test/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: true, StackName: true}, "", "/myappname/dev/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: true, StackName: false}, "", "/myappname/dev/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: false, StackName: true}, "", "/myappname/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: true, Environment: false, StackName: false}, "", "/myappname/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: true, StackName: true}, "", "/dev/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: true, StackName: false}, "", "/dev/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: false, StackName: true}, "", "/stack-a/"},
		{bwlcfg.Include{GlobalPrefix: false, ApplicationName: false, Environment: false, StackName: false}, "", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := settings.SSMParamName(tt.name, tt.include); got != tt.want {
				t.Errorf("SSMParamName(%q, %+v) = %q, want %q", tt.name, tt.include, got, tt.want)
			}
			if got := settings.SSMParamPath(tt.include); got != tt.want {
				t.Errorf("SSMParamPath(%+v) = %q, want %q", tt.include, got, tt.want)
			}
		})
	}
}

func TestNames_DropEmptySegments(t *testing.T) {
	t.Parallel()
	settings := bwlcfg.New("test", bwlcfg.NewSnapshot(map[string]string{
		"APPLICATION_NAME": "MyAppName",
		"STACK_NAME":       "",
	}))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"bucket", settings.BucketName("bucket", bwlcfg.IncludeAll), "myappname-bucket"},
		{"legacy ssm", settings.LegacySSMParamName("param", bwlcfg.IncludeAll), "myappname-ssm-param"},
		{"ssm", settings.SSMParamName("param", bwlcfg.IncludeAll), "/myappname/ssm/param"},
		{"ssm path", settings.SSMParamPath(bwlcfg.IncludeAll), "/myappname/"},
		{"bare bucket", settings.BucketName("bucket", bwlcfg.Include{GlobalPrefix: true, Environment: true}), "bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSSMParamName_NoSegments(t *testing.T) {
	t.Parallel()
	got := namingSettings().SSMParamName("param8", bwlcfg.Include{})
	if got != "/ssm/param8" {
		t.Errorf("SSMParamName() = %q, want %q", got, "/ssm/param8")
	}
	if got := namingSettings().SSMParamPath(bwlcfg.Include{}); got != "/" {
		t.Errorf("SSMParamPath() = %q, want %q", got, "/")
	}
}
