package bwlcore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"
)

// SSMAPI is the part of the SSM client used for parameter lookups.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// SNSAPI is the part of the SNS client used for notifications.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var (
	_ SSMAPI = (*ssm.Client)(nil)
	_ SNSAPI = (*sns.Client)(nil)
)

// FIPSEndpoint returns the FIPS endpoint URL of service in region.
func FIPSEndpoint(service, region string) string {
	return fmt.Sprintf("https://%s-fips.%s.amazonaws.com", service, region)
}

// fipsIgnored resolves FIPS mode for services whose FIPS support depends on the
// region; in that case the mode is only logged.
func (c *Core) fipsIgnored(service string) error {
	fips, err := c.settings.FIPSMode()
	if err != nil {
		return err
	}
	if fips {
		c.logger.Info("FIPS mode ignored, support is region-dependent", zap.String("service", service))
	}
	return nil
}

// InitEC2 initializes the EC2 client.
func (c *Core) InitEC2(ctx context.Context) error {
	cfg, err := c.clientConfig(ctx)
	if err != nil {
		return err
	}
	if err := c.fipsIgnored("ec2"); err != nil {
		return err
	}
	c.ec2 = ec2.NewFromConfig(cfg)
	c.logger.Info("AWS EC2 API initialized")
	return nil
}

// InitSSM initializes the SSM client.
func (c *Core) InitSSM(ctx context.Context) error {
	cfg, err := c.clientConfig(ctx)
	if err != nil {
		return err
	}
	if err := c.fipsIgnored("ssm"); err != nil {
		return err
	}
	c.ssm = ssm.NewFromConfig(cfg)
	c.logger.Info("AWS SSM API initialized")
	return nil
}

// InitS3 initializes the S3 client, using the s3-fips endpoint in FIPS mode.
func (c *Core) InitS3(ctx context.Context) error {
	cfg, err := c.clientConfig(ctx)
	if err != nil {
		return err
	}
	fips, err := c.settings.FIPSMode()
	if err != nil {
		return err
	}

	var optFns []func(*s3.Options)
	if fips {
		c.logger.Info("enabling FIPS compliance mode for AWS S3")
		optFns = append(optFns, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(FIPSEndpoint("s3", cfg.Region))
		})
	}
	c.s3 = s3.NewFromConfig(cfg, optFns...)
	c.logger.Info("AWS S3 API initialized")
	return nil
}

// InitSNS initializes the SNS client.
func (c *Core) InitSNS(ctx context.Context) error {
	cfg, err := c.clientConfig(ctx)
	if err != nil {
		return err
	}
	if err := c.fipsIgnored("sns"); err != nil {
		return err
	}
	c.sns = sns.NewFromConfig(cfg)
	c.logger.Info("AWS SNS API initialized")
	return nil
}

// InitLambda initializes the Lambda client, using the lambda-fips endpoint in FIPS mode.
func (c *Core) InitLambda(ctx context.Context) error {
	cfg, err := c.clientConfig(ctx)
	if err != nil {
		return err
	}
	fips, err := c.settings.FIPSMode()
	if err != nil {
		return err
	}

	var optFns []func(*lambda.Options)
	if fips {
		c.logger.Info("enabling FIPS compliance mode for AWS Lambda API")
		optFns = append(optFns, func(o *lambda.Options) {
			o.BaseEndpoint = aws.String(FIPSEndpoint("lambda", cfg.Region))
		})
	}
	c.lambda = lambda.NewFromConfig(cfg, optFns...)
	c.logger.Info("AWS Lambda API initialized")
	return nil
}

// InitRDS initializes the RDS client.
func (c *Core) InitRDS(ctx context.Context) error {
	cfg, err := c.clientConfig(ctx)
	if err != nil {
		return err
	}
	if err := c.fipsIgnored("rds"); err != nil {
		return err
	}
	c.rds = rds.NewFromConfig(cfg)
	c.logger.Info("AWS RDS API initialized")
	return nil
}
