// Package testutil provides test utilities and mocks for the bucket probe.
// This package is internal and should only be used for testing within the module.
package testutil

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/internal/s3api"
)

// MockS3Client is a mock implementation of the S3API interface for testing.
// It records every ListObjectsV2 input so tests can assert on what was sent
// and how often.
type MockS3Client struct {
	ListObjectsV2Func func(context.Context, *s3.ListObjectsV2Input, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)

	mu     sync.Mutex
	inputs []*s3.ListObjectsV2Input
}

// ListObjectsV2 mocks the S3 ListObjectsV2 operation.
func (m *MockS3Client) ListObjectsV2(
	ctx context.Context,
	params *s3.ListObjectsV2Input,
	optFns ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, params)
	m.mu.Unlock()

	if m.ListObjectsV2Func != nil {
		return m.ListObjectsV2Func(ctx, params, optFns...)
	}
	return &s3.ListObjectsV2Output{}, nil
}

// Calls returns the number of ListObjectsV2 calls received.
func (m *MockS3Client) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// Inputs returns the ListObjectsV2 inputs received, in call order.
func (m *MockS3Client) Inputs() []*s3.ListObjectsV2Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*s3.ListObjectsV2Input, len(m.inputs))
	copy(out, m.inputs)
	return out
}

// NewListingMock returns a mock that answers every listing with output.
func NewListingMock(output *s3.ListObjectsV2Output) *MockS3Client {
	return &MockS3Client{
		ListObjectsV2Func: func(context.Context, *s3.ListObjectsV2Input, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			return output, nil
		},
	}
}

// NewErrorMock returns a mock that fails every listing with err.
func NewErrorMock(err error) *MockS3Client {
	return &MockS3Client{
		ListObjectsV2Func: func(context.Context, *s3.ListObjectsV2Input, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			return nil, err
		},
	}
}

// Ensure MockS3Client implements s3api.S3API interface
var _ s3api.S3API = (*MockS3Client)(nil)
