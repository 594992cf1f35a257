// Package s3probe provides functional options for configuring the probe client.
package s3probe

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

// WithProfile selects the named profile from the shared AWS config and
// credentials files. Default is "default". An empty name keeps the default.
func WithProfile(profile string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		if profile != "" {
			c.Profile = profile
		}
	}
}

// WithBucket overrides the bucket the probe lists.
// Default is DefaultBucket. An empty name keeps the default.
func WithBucket(bucket string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		if bucket != "" {
			c.Bucket = bucket
		}
	}
}

// WithRegion sets the AWS region for the probe.
// If not specified, uses the region resolved for the profile, or us-east-1.
func WithRegion(region string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Region = region
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// This is useful for S3-compatible services or local testing with LocalStack.
func WithEndpoint(endpoint string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithForcePathStyle forces the use of path-style URLs instead of virtual-hosted style.
// This is required for S3-compatible services that don't support virtual hosting.
func WithForcePathStyle(forcePathStyle bool) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.ForcePathStyle = forcePathStyle
	}
}

// WithAWSConfig provides a ready-made AWS configuration.
// It replaces profile-based loading entirely; WithProfile then only labels
// the client.
func WithAWSConfig(config *aws.Config) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.CustomAWSConfig = config
	}
}

// WithLogger configures the client with a structured logger.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Logger = logger
	}
}
