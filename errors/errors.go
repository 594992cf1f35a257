package errors

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

// Error represents a probe failure that is not a service-reported error,
// such as a session that could not be built or a request that never got a
// response. It wraps the underlying error with the operation that failed.
type Error struct {
	// Op is the operation that failed (e.g., "client initialization", "list objects")
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Err is the underlying error from the AWS SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" {
		return fmt.Sprintf("s3probe.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	return fmt.Sprintf("s3probe.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewBucketError creates a new Error with bucket context.
func NewBucketError(op, bucket string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Err:    err,
	}
}

// ServiceError is a failure reported by the service itself: the request
// reached S3 and S3 answered with an error code and message.
type ServiceError struct {
	// Code is the provider-assigned error code.
	Code ErrorCode

	// Message is the human-readable message from the error response.
	Message string

	// Metadata describes the HTTP exchange that carried the error.
	Metadata s3types.ResponseMetadata

	// Err is the original SDK error.
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("s3: %s: %s", e.Code, e.Message)
}

// Unwrap returns the original SDK error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is maps provider error codes onto the package sentinels so callers can
// use errors.Is without knowing S3's code names.
func (e *ServiceError) Is(target error) bool {
	switch target {
	case ErrAccessDenied:
		return e.Code == CodeAccessDenied || e.Code == CodeAllAccessDisabled
	case ErrBucketNotFound:
		return e.Code == CodeNoSuchBucket
	case ErrInvalidCredentials:
		switch e.Code {
		case CodeInvalidAccessKeyID, CodeSignatureDoesNotMatch, CodeExpiredToken, CodeInvalidToken:
			return true
		}
	case ErrRegionMismatch:
		switch e.Code {
		case CodePermanentRedirect, CodeAuthorizationHeaderMalformed, CodeIllegalLocationConstraint:
			return true
		}
	case ErrInvalidInput:
		return e.Code == CodeInvalidBucketName || e.Code == CodeInvalidArgument
	}
	return false
}

// AsServiceError reports whether err carries a service-reported error and,
// if so, returns its code, message and response metadata.
// Errors without a service response (credential resolution, DNS, transport,
// cancellation) return false.
func AsServiceError(err error) (*ServiceError, bool) {
	if err == nil {
		return nil, false
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}

	return &ServiceError{
		Code:     ErrorCode(apiErr.ErrorCode()),
		Message:  apiErr.ErrorMessage(),
		Metadata: metadataFromError(err),
		Err:      err,
	}, true
}

// metadataFromError walks the SDK error chain for the HTTP response details.
// The S3 response error type is internal to the SDK, so it is matched by
// the methods it exposes.
func metadataFromError(err error) s3types.ResponseMetadata {
	var md s3types.ResponseMetadata

	var reqErr interface{ ServiceRequestID() string }
	if errors.As(err, &reqErr) {
		md.RequestID = reqErr.ServiceRequestID()
	}

	var hostErr interface{ ServiceHostID() string }
	if errors.As(err, &hostErr) {
		md.HostID = hostErr.ServiceHostID()
	}

	var statusErr interface{ HTTPStatusCode() int }
	if errors.As(err, &statusErr) {
		md.HTTPStatusCode = statusErr.HTTPStatusCode()
	}

	var respErr interface{ HTTPResponse() *smithyhttp.Response }
	if errors.As(err, &respErr) {
		if resp := respErr.HTTPResponse(); resp != nil && resp.Response != nil {
			md.HTTPHeaders = s3types.HeaderMap(resp.Header)
		}
	}

	var maxErr *retry.MaxAttemptsError
	if errors.As(err, &maxErr) && maxErr.Attempt > 1 {
		md.RetryAttempts = maxErr.Attempt - 1
	}

	return md
}

// Sentinel errors for common probe failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrAccessDenied indicates that access to the bucket is denied
	ErrAccessDenied = errors.New("s3: access denied")

	// ErrBucketNotFound indicates that the bucket does not exist
	ErrBucketNotFound = errors.New("s3: bucket not found")

	// ErrInvalidCredentials indicates that the AWS credentials are invalid
	ErrInvalidCredentials = errors.New("s3: invalid credentials")

	// ErrRegionMismatch indicates that the bucket is in a different region
	ErrRegionMismatch = errors.New("s3: region mismatch")

	// ErrInvalidInput indicates that the request was rejected as malformed
	ErrInvalidInput = errors.New("s3: invalid input")
)

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsBucketNotFound checks if an error indicates that the bucket was not found.
func IsBucketNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}

// IsInvalidCredentials checks if an error indicates the credentials were rejected.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
