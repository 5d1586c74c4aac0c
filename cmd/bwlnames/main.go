package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/basewarphq/bwlambda/bwlcfg"
)

type App struct {
	EnvFile string `short:"f" name:"env-file" help:"Read variables from a YAML file instead of the process environment." type:"existingfile"`
	Name    string `short:"n" default:"bwlnames" help:"Function name to resolve settings for."`

	Settings  SettingsCmd  `cmd:"" help:"Print all resolved settings as YAML."`
	Bucket    BucketCmd    `cmd:"" help:"Print a composed S3 bucket name."`
	SSM       SSMCmd       `cmd:"" name:"ssm" help:"Print a composed SSM parameter name, or the path prefix without NAME."`
	LegacySSM LegacySSMCmd `cmd:"" name:"legacy-ssm" help:"Print a composed legacy SSM parameter name."`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("bwlnames"),
		kong.Description("Resolve function settings and composed AWS resource names."),
		kong.UsageOnError(),
	)

	settings, err := loadSettings(app.Name, app.EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	if err := ctx.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(name, envFile string) (*bwlcfg.Settings, error) {
	if envFile == "" {
		return bwlcfg.New(name, bwlcfg.FromProcess()), nil
	}
	snap, err := loadSnapshotFile(envFile)
	if err != nil {
		return nil, err
	}
	return bwlcfg.New(name, snap), nil
}
