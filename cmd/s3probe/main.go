// Command s3probe verifies that the credentials of an AWS profile can list
// the probe bucket. It issues one ListObjectsV2 request and prints either
// the returned keys or the service error.
//
// The profile is taken from AWS_PROFILE and defaults to "default".
// S3PROBE_LOG_LEVEL controls diagnostic logging on stderr.
// S3PROBE_ENDPOINT and S3PROBE_FORCE_PATH_STYLE point the probe at an
// S3-compatible service.
//
// The exit status is 0 whenever the service answered, including when it
// refused the request. Failures that never reach the service exit with 1.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := s3probe.LoadEnv()
	if err != nil {
		fmt.Fprintf(stderr, "s3probe: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	client, err := s3probe.New(ctx, append(cfg.Options(), s3probe.WithLogger(logger))...)
	if err != nil {
		fmt.Fprintf(stderr, "s3probe: %v\n", err)
		return 1
	}

	result, err := client.Probe(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "s3probe: %v\n", err)
		return 1
	}

	if err := s3probe.WriteReport(stdout, result); err != nil {
		fmt.Fprintf(stderr, "s3probe: %v\n", err)
		return 1
	}
	return 0
}
