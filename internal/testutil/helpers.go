// Package testutil provides test helper functions.
package testutil

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// GenerateTestBucketName generates a valid test bucket name.
// Bucket names must be DNS-compliant and globally unique.
func GenerateTestBucketName(prefix string) string {
	timestamp := time.Now().Unix()
	random := rand.Int31n(10000)
	name := fmt.Sprintf("%s-%d-%d", prefix, timestamp, random)
	// Ensure DNS compliance
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	if len(name) > 63 {
		name = name[:63]
	}
	return name
}

// CreateTestObject creates a test S3 object structure.
// This is useful for mocking ListObjectsV2 responses.
func CreateTestObject(key string, size int64) types.Object {
	return types.Object{
		Key:          aws.String(key),
		Size:         aws.Int64(size),
		LastModified: aws.Time(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		ETag:         aws.String(fmt.Sprintf(`"%x"`, md5.Sum([]byte(key)))),
		StorageClass: types.ObjectStorageClassStandard,
	}
}

// CreateListObjectsV2Output creates the output S3 returns for a listing of
// bucket capped at maxKeys. Contents is left nil when objects is empty, as
// the SDK does when the response has no item list.
func CreateListObjectsV2Output(bucket string, maxKeys int32, objects ...types.Object) *s3.ListObjectsV2Output {
	output := &s3.ListObjectsV2Output{
		IsTruncated: aws.Bool(false),
		Name:        aws.String(bucket),
		Prefix:      aws.String(""),
		MaxKeys:     aws.Int32(maxKeys),
		KeyCount:    aws.Int32(int32(len(objects))),
	}
	if len(objects) > 0 {
		output.Contents = objects
	}
	return output
}

// WithRequestID records requestID in the output's result metadata, the way
// the SDK middleware stack does for a real response.
func WithRequestID(output *s3.ListObjectsV2Output, requestID string) *s3.ListObjectsV2Output {
	awsmiddleware.SetRequestIDMetadata(&output.ResultMetadata, requestID)
	return output
}

// NewServiceErrorResponse builds the error chain the SDK returns when S3
// answers ListObjectsV2 with an error document.
func NewServiceErrorResponse(status int, code, message, requestID, hostID string) error {
	header := http.Header{}
	header.Set("X-Amz-Request-Id", requestID)
	header.Set("X-Amz-Id-2", hostID)
	header.Set("Content-Type", "application/xml")

	respErr := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: status, Header: header},
			},
			Err: &smithy.GenericAPIError{
				Code:    code,
				Message: message,
				Fault:   smithy.FaultClient,
			},
		},
		RequestID: requestID,
	}

	return &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: "ListObjectsV2",
		Err:           &hostIDResponseError{ResponseError: respErr, hostID: hostID},
	}
}

// NewTransportError builds the error chain the SDK returns when a request
// never reaches the service.
func NewTransportError(err error) error {
	return &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: "ListObjectsV2",
		Err:           &smithyhttp.RequestSendError{Err: err},
	}
}

// hostIDResponseError mirrors the S3 response error, which adds the
// extended request id to the generic AWS response error.
type hostIDResponseError struct {
	*awshttp.ResponseError
	hostID string
}

func (e *hostIDResponseError) ServiceHostID() string {
	return e.hostID
}
