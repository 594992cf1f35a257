// Package s3types provides shared type definitions for the bucket probe.
package s3types

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Object represents one entry of a listing response.
type Object struct {
	// Key is the S3 object key (path)
	Key string

	// Size is the object size in bytes
	Size int64
}

// ResponseMetadata describes the HTTP exchange behind a listing call.
type ResponseMetadata struct {
	// RequestID is the x-amz-request-id assigned by S3
	RequestID string

	// HostID is the x-amz-id-2 extended request id
	HostID string

	// HTTPStatusCode is the status of the final HTTP response
	HTTPStatusCode int

	// HTTPHeaders holds the response headers, lower-cased, first value only
	HTTPHeaders map[string]string

	// RetryAttempts is the number of attempts made after the first one
	RetryAttempts int
}

// Map returns the metadata as a mapping keyed by the names S3 tooling uses
// for these fields.
func (m ResponseMetadata) Map() map[string]any {
	headers := m.HTTPHeaders
	if headers == nil {
		headers = map[string]string{}
	}
	return map[string]any{
		"RequestId":      m.RequestID,
		"HostId":         m.HostID,
		"HTTPStatusCode": m.HTTPStatusCode,
		"HTTPHeaders":    headers,
		"RetryAttempts":  m.RetryAttempts,
	}
}

// HeaderMap flattens HTTP headers into lower-cased names mapped to their
// first value.
func HeaderMap(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		out[strings.ToLower(name)] = values[0]
	}
	return out
}

// ClientConfig holds configuration for the probe client.
type ClientConfig struct {
	Profile         string
	Bucket          string
	Region          string
	Endpoint        string
	ForcePathStyle  bool
	CustomAWSConfig *aws.Config
	Logger          *slog.Logger
}

// Option is a functional option for configuring the probe client.
type Option func(*ClientConfig)
