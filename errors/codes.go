// Package errors provides error types and handling for the bucket probe.
// It separates service-reported failures, which the probe reports as a
// result, from every other failure, which is returned to the caller.
package errors

// ErrorCode is a provider-assigned S3 error code as it appears in the
// error response body.
// Codes are kept as strings so they print exactly as the service sent them.
type ErrorCode string

const (
	// Permission errors.

	// CodeAccessDenied indicates the credentials lack permission for the bucket.
	CodeAccessDenied ErrorCode = "AccessDenied"

	// CodeAllAccessDisabled indicates all access to the bucket has been disabled.
	CodeAllAccessDisabled ErrorCode = "AllAccessDisabled"

	// Credential errors.

	// CodeInvalidAccessKeyID indicates the access key does not exist.
	CodeInvalidAccessKeyID ErrorCode = "InvalidAccessKeyId"

	// CodeSignatureDoesNotMatch indicates the secret key does not match the access key.
	CodeSignatureDoesNotMatch ErrorCode = "SignatureDoesNotMatch"

	// CodeExpiredToken indicates the session token has expired.
	CodeExpiredToken ErrorCode = "ExpiredToken"

	// CodeInvalidToken indicates the session token is malformed or invalid.
	CodeInvalidToken ErrorCode = "InvalidToken"

	// Resource errors.

	// CodeNoSuchBucket indicates the bucket does not exist.
	CodeNoSuchBucket ErrorCode = "NoSuchBucket"

	// CodeInvalidBucketName indicates the bucket name is not valid.
	CodeInvalidBucketName ErrorCode = "InvalidBucketName"

	// Region errors.

	// CodePermanentRedirect indicates the bucket lives behind a different endpoint.
	CodePermanentRedirect ErrorCode = "PermanentRedirect"

	// CodeAuthorizationHeaderMalformed indicates the request was signed for the wrong region.
	CodeAuthorizationHeaderMalformed ErrorCode = "AuthorizationHeaderMalformed"

	// CodeIllegalLocationConstraint indicates a region mismatch between the request and the bucket.
	CodeIllegalLocationConstraint ErrorCode = "IllegalLocationConstraintException"

	// Request errors.

	// CodeInvalidArgument indicates a request parameter was rejected.
	CodeInvalidArgument ErrorCode = "InvalidArgument"

	// CodeSlowDown indicates the request rate is too high.
	CodeSlowDown ErrorCode = "SlowDown"
)

// String returns the code as sent by the service.
func (c ErrorCode) String() string {
	return string(c)
}
