// Package s3probe provides tests for client initialization and configuration.
package s3probe

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/internal/testutil"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

func sharedProfiles(t *testing.T) {
	t.Helper()
	testutil.WriteSharedConfig(t, map[string]testutil.Profile{
		"default": {Region: "eu-west-1", AccessKeyID: "AKIDDEFAULT", SecretAccessKey: "default-secret"},
		"staging": {Region: "eu-central-1", AccessKeyID: "AKIDSTAGING", SecretAccessKey: "staging-secret"},
		"noregion": {AccessKeyID: "AKIDNOREGION", SecretAccessKey: "noregion-secret"},
	})
}

func sdkOptions(t *testing.T, c *Client) s3.Options {
	t.Helper()
	raw, ok := c.api.(*s3.Client)
	require.True(t, ok, "client should wrap the SDK S3 client")
	return raw.Options()
}

// TestClient_New tests session loading for the selected profile.
func TestClient_New(t *testing.T) {
	tests := []struct {
		name        string
		opts        []s3types.Option
		wantProfile string
		wantRegion  string
		wantKeyID   string
	}{
		{
			name:        "default profile",
			opts:        nil,
			wantProfile: "default",
			wantRegion:  "eu-west-1",
			wantKeyID:   "AKIDDEFAULT",
		},
		{
			name:        "named profile",
			opts:        []s3types.Option{WithProfile("staging")},
			wantProfile: "staging",
			wantRegion:  "eu-central-1",
			wantKeyID:   "AKIDSTAGING",
		},
		{
			name:        "empty profile keeps default",
			opts:        []s3types.Option{WithProfile("")},
			wantProfile: "default",
			wantRegion:  "eu-west-1",
			wantKeyID:   "AKIDDEFAULT",
		},
		{
			name:        "region option overrides profile region",
			opts:        []s3types.Option{WithProfile("staging"), WithRegion("ap-southeast-2")},
			wantProfile: "staging",
			wantRegion:  "ap-southeast-2",
			wantKeyID:   "AKIDSTAGING",
		},
		{
			name:        "profile without region falls back to us-east-1",
			opts:        []s3types.Option{WithProfile("noregion")},
			wantProfile: "noregion",
			wantRegion:  "us-east-1",
			wantKeyID:   "AKIDNOREGION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sharedProfiles(t)
			ctx := context.Background()

			client, err := New(ctx, tt.opts...)
			require.NoError(t, err)
			require.NotNil(t, client)

			assert.Equal(t, tt.wantProfile, client.Profile())
			assert.Equal(t, DefaultBucket, client.Bucket())

			opts := sdkOptions(t, client)
			assert.Equal(t, tt.wantRegion, opts.Region)

			creds, err := opts.Credentials.Retrieve(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeyID, creds.AccessKeyID)
		})
	}
}

// TestClient_New_UnknownProfile tests that a missing profile fails client construction.
func TestClient_New_UnknownProfile(t *testing.T) {
	sharedProfiles(t)

	client, err := New(context.Background(), WithProfile("does-not-exist"))
	require.Error(t, err)
	assert.Nil(t, client)

	var probeErr *errors.Error
	require.ErrorAs(t, err, &probeErr)
	assert.Equal(t, "client initialization", probeErr.Op)
	assert.Contains(t, err.Error(), `"does-not-exist"`)

	_, isService := errors.AsServiceError(err)
	assert.False(t, isService, "a missing profile is not a service error")
}

// TestClient_New_SingleAttempt tests that the SDK client never retries.
func TestClient_New_SingleAttempt(t *testing.T) {
	sharedProfiles(t)
	t.Setenv("AWS_MAX_ATTEMPTS", "7")

	client, err := New(context.Background())
	require.NoError(t, err)

	opts := sdkOptions(t, client)
	assert.IsType(t, aws.NopRetryer{}, opts.Retryer)
	assert.Equal(t, 1, opts.Retryer.MaxAttempts())
	assert.Zero(t, opts.RetryMaxAttempts)
}

// TestClient_New_WithOptions tests endpoint, addressing and custom config options.
func TestClient_New_WithOptions(t *testing.T) {
	cfg := aws.Config{
		Region:      "us-west-2",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDCUSTOM", "custom-secret", ""),
	}

	client, err := New(context.Background(),
		WithAWSConfig(&cfg),
		WithProfile("custom"),
		WithBucket("other-bucket"),
		WithEndpoint("http://localhost:4566"),
		WithForcePathStyle(true),
	)
	require.NoError(t, err)

	assert.Equal(t, "custom", client.Profile())
	assert.Equal(t, "other-bucket", client.Bucket())

	opts := sdkOptions(t, client)
	assert.Equal(t, "us-west-2", opts.Region)
	assert.True(t, opts.UsePathStyle)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *opts.BaseEndpoint)
	assert.IsType(t, aws.NopRetryer{}, opts.Retryer)
}

// TestClient_New_CustomConfigWithoutRegion tests the region fallback for custom configs.
func TestClient_New_CustomConfigWithoutRegion(t *testing.T) {
	client, err := New(context.Background(), WithAWSConfig(&aws.Config{}))
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", sdkOptions(t, client).Region)
}

// TestNewWithClient tests construction around an injected implementation.
func TestNewWithClient(t *testing.T) {
	mock := &testutil.MockS3Client{}

	t.Run("defaults", func(t *testing.T) {
		client := NewWithClient(mock)
		assert.Equal(t, DefaultProfile, client.Profile())
		assert.Equal(t, DefaultBucket, client.Bucket())
		assert.Nil(t, client.logger)
		assert.Same(t, mock, client.api)
	})

	t.Run("with options", func(t *testing.T) {
		client := NewWithClient(mock, WithProfile("ops"), WithBucket(""), WithBucket("b2"))
		assert.Equal(t, "ops", client.Profile())
		assert.Equal(t, "b2", client.Bucket())
	})

	assert.Zero(t, mock.Calls(), "construction must not touch the network")
}
