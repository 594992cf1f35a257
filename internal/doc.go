// Package internal contains implementation details of the bucket probe that
// are not part of its public API.
//
//   - s3api: the narrow S3 interface the probe depends on
//   - testutil: mocks, fixtures and LocalStack helpers for tests
package internal
