package main

import (
	"fmt"
	"io"

	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// IncludeFlags selects the optional name segments.
type IncludeFlags struct {
	GlobalPrefix    bool `default:"true" negatable:"" help:"Include GLOBAL_PREFIX."`
	ApplicationName bool `default:"true" negatable:"" help:"Include APPLICATION_NAME."`
	Environment     bool `negatable:"" help:"Include ENVIRONMENT."`
	StackName       bool `negatable:"" help:"Include STACK_NAME."`
}

func (f IncludeFlags) include() bwlcfg.Include {
	return bwlcfg.Include{
		GlobalPrefix:    f.GlobalPrefix,
		ApplicationName: f.ApplicationName,
		Environment:     f.Environment,
		StackName:       f.StackName,
	}
}

type SettingsCmd struct{}

func (c *SettingsCmd) Run(settings *bwlcfg.Settings, w io.Writer) error {
	resolved, err := settings.Resolve()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(resolved); err != nil {
		return errors.Wrap(err, "encode settings")
	}
	return enc.Close()
}

type BucketCmd struct {
	IncludeFlags `embed:""`
	Name string `arg:"" help:"Bare bucket name."`
}

func (c *BucketCmd) Run(settings *bwlcfg.Settings, w io.Writer) error {
	_, err := fmt.Fprintln(w, settings.BucketName(c.Name, c.include()))
	return err
}

type SSMCmd struct {
	IncludeFlags `embed:""`
	Name string `arg:"" optional:"" help:"Bare parameter name."`
}

func (c *SSMCmd) Run(settings *bwlcfg.Settings, w io.Writer) error {
	_, err := fmt.Fprintln(w, settings.SSMParamName(c.Name, c.include()))
	return err
}

type LegacySSMCmd struct {
	IncludeFlags `embed:""`
	Name string `arg:"" help:"Bare parameter name."`
}

func (c *LegacySSMCmd) Run(settings *bwlcfg.Settings, w io.Writer) error {
	_, err := fmt.Fprintln(w, settings.LegacySSMParamName(c.Name, c.include()))
	return err
}
