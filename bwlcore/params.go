package bwlcore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ParamOptions controls how SSM parameter names are composed and read.
type ParamOptions struct {
	Include   bwlcfg.Include
	Encrypted bool
	// Legacy selects the flat, hyphenated naming convention. It applies to
	// single-parameter lookups only.
	Legacy bool
	// Recursive also returns parameters below nested paths.
	Recursive bool
}

// DefaultParamOptions includes the global prefix and application name.
func DefaultParamOptions() ParamOptions {
	return ParamOptions{Include: bwlcfg.Include{GlobalPrefix: true, ApplicationName: true}}
}

func (c *Core) ssmClient() (SSMAPI, error) {
	if c.ssm == nil {
		return nil, errors.Wrap(errNotInitialized, "SSM: call InitSSM first")
	}
	return c.ssm, nil
}

// GetSSMParameter reads one parameter by its composed name.
func (c *Core) GetSSMParameter(ctx context.Context, name string, opts ParamOptions) (string, error) {
	client, err := c.ssmClient()
	if err != nil {
		return "", err
	}

	paramName := c.settings.SSMParamName(name, opts.Include)
	if opts.Legacy {
		paramName = c.settings.LegacySSMParamName(name, opts.Include)
	}
	c.logger.Debug("reading SSM parameter", zap.String("name", paramName))

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(opts.Encrypted),
	})
	if err != nil {
		return "", errors.Wrapf(err, "get SSM parameter %s", paramName)
	}
	if out.Parameter == nil {
		return "", errors.Newf("SSM parameter %s has no value", paramName)
	}
	return aws.ToString(out.Parameter.Value), nil
}

// GetSSMParametersByPath reads every parameter under the composed path and
// returns them keyed by full parameter name. An empty subpath lists the
// prefix directory itself.
func (c *Core) GetSSMParametersByPath(ctx context.Context, subpath string, opts ParamOptions) (map[string]string, error) {
	client, err := c.ssmClient()
	if err != nil {
		return nil, err
	}

	path := c.settings.SSMParamName(subpath, opts.Include)
	c.logger.Debug("reading SSM parameters by path", zap.String("path", path))

	params := make(map[string]string)
	pages := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(path),
		Recursive:      aws.Bool(opts.Recursive),
		WithDecryption: aws.Bool(opts.Encrypted),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "get SSM parameters by path %s", path)
		}
		for _, p := range page.Parameters {
			params[aws.ToString(p.Name)] = aws.ToString(p.Value)
		}
	}
	return params, nil
}
