// Package s3probe provides client initialization and configuration.
package s3probe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/internal/s3api"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

const (
	// DefaultProfile is the shared config profile used when none is selected.
	DefaultProfile = "default"

	// DefaultBucket is the bucket the probe lists.
	DefaultBucket = "bda-test-bucket"

	// MaxKeys caps every listing request the probe issues.
	MaxKeys int32 = 5

	defaultRegion = "us-east-1"
)

// Client probes a single bucket with credentials from a single profile.
// A Client holds no mutable state and is safe for concurrent use, though a
// probe run normally issues exactly one request.
type Client struct {
	// api is the S3 listing interface, the SDK client outside of tests
	api s3api.S3API

	// profile is the shared config profile the session was built from
	profile string

	// bucket is the probed bucket
	bucket string

	// logger is used for structured logging of the probe; nil disables logging
	logger *slog.Logger
}

// New loads an AWS session for the selected profile and creates a probe
// client on top of it. The profile must exist in the shared config or
// credentials files; credentials themselves are resolved lazily, on the
// first request.
//
// Example:
//
//	client, err := s3probe.New(ctx,
//	    s3probe.WithProfile("staging"),
//	    s3probe.WithLogger(slog.Default()),
//	)
func New(ctx context.Context, opts ...s3types.Option) (*Client, error) {
	clientCfg := newClientConfig(opts)

	var cfg aws.Config
	if clientCfg.CustomAWSConfig != nil {
		cfg = *clientCfg.CustomAWSConfig
	} else {
		loadOpts := []func(*config.LoadOptions) error{
			config.WithSharedConfigProfile(clientCfg.Profile),
		}
		if clientCfg.Region != "" {
			loadOpts = append(loadOpts, config.WithRegion(clientCfg.Region))
		}

		var err error
		cfg, err = config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.NewError("client initialization",
				fmt.Errorf("load profile %q: %w", clientCfg.Profile, err))
		}
	}

	if clientCfg.Region != "" {
		cfg.Region = clientCfg.Region
	} else if cfg.Region == "" {
		cfg.Region = defaultRegion
	}

	s3Opts := []func(*s3.Options){
		// One request per probe. RetryMaxAttempts is cleared too, otherwise
		// AWS_MAX_ATTEMPTS would wrap the retryer back into a retrying one.
		func(o *s3.Options) {
			o.Retryer = aws.NopRetryer{}
			o.RetryMaxAttempts = 0
		},
	}
	if clientCfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}
	if clientCfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(clientCfg.Endpoint)
		})
	}

	return &Client{
		api:     s3.NewFromConfig(cfg, s3Opts...),
		profile: clientCfg.Profile,
		bucket:  clientCfg.Bucket,
		logger:  clientCfg.Logger,
	}, nil
}

// NewWithClient creates a probe client around an existing S3 implementation.
// This is used for testing with mocked clients and for callers that already
// hold an *s3.Client. Retry behavior is whatever api was built with.
func NewWithClient(api s3api.S3API, opts ...s3types.Option) *Client {
	clientCfg := newClientConfig(opts)
	return &Client{
		api:     api,
		profile: clientCfg.Profile,
		bucket:  clientCfg.Bucket,
		logger:  clientCfg.Logger,
	}
}

// Profile returns the shared config profile the client was built for.
func (c *Client) Profile() string {
	return c.profile
}

// Bucket returns the bucket the client probes.
func (c *Client) Bucket() string {
	return c.bucket
}

func newClientConfig(opts []s3types.Option) *s3types.ClientConfig {
	clientCfg := &s3types.ClientConfig{
		Profile: DefaultProfile,
		Bucket:  DefaultBucket,
	}
	for _, opt := range opts {
		opt(clientCfg)
	}
	return clientCfg
}
