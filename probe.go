package s3probe

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

// Result is the outcome of a probe. Exactly one of Listing and Failure is set.
type Result struct {
	// Listing is set when the service answered the listing request.
	Listing *Listing

	// Failure is set when the service rejected the request.
	Failure *errors.ServiceError
}

// OK reports whether the service answered the request.
func (r *Result) OK() bool {
	return r != nil && r.Listing != nil && r.Failure == nil
}

// Listing is the part of a listing response the probe reports.
type Listing struct {
	// KeyCount is the item count reported by the service, 0 when absent
	KeyCount int32

	// Objects holds the returned objects in the order the service sent them
	Objects []s3types.Object

	// HasContents reports whether the response carried an item list at all
	HasContents bool

	// Fields names the top-level response fields that were present
	Fields []string

	// Metadata describes the HTTP exchange
	Metadata s3types.ResponseMetadata
}

// Keys returns the object keys in response order.
func (l *Listing) Keys() []string {
	keys := make([]string, 0, len(l.Objects))
	for _, obj := range l.Objects {
		keys = append(keys, obj.Key)
	}
	return keys
}

// Probe issues a single ListObjectsV2 request for at most MaxKeys objects.
//
// Both an answered request and a service-reported error produce a Result.
// An error is returned only when no service answer exists, e.g. when
// credentials cannot be resolved or the endpoint cannot be reached.
func (c *Client) Probe(ctx context.Context) (*Result, error) {
	if c.logger != nil {
		c.logger.InfoContext(ctx, "probing bucket",
			"profile", c.profile,
			"bucket", c.bucket,
			"max_keys", MaxKeys)
	}

	output, err := c.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucket),
		MaxKeys: aws.Int32(MaxKeys),
	})
	if err != nil {
		if svcErr, ok := errors.AsServiceError(err); ok {
			if c.logger != nil {
				c.logger.WarnContext(ctx, "bucket probe rejected",
					"bucket", c.bucket,
					"code", svcErr.Code.String(),
					"status", svcErr.Metadata.HTTPStatusCode,
					"request_id", svcErr.Metadata.RequestID)
			}
			return &Result{Failure: svcErr}, nil
		}

		if c.logger != nil {
			c.logger.ErrorContext(ctx, "bucket probe failed",
				"bucket", c.bucket,
				"error", err)
		}
		return nil, errors.NewBucketError("list objects", c.bucket, err)
	}

	listing := newListing(output)
	if c.logger != nil {
		c.logger.InfoContext(ctx, "bucket probe succeeded",
			"bucket", c.bucket,
			"key_count", listing.KeyCount,
			"request_id", listing.Metadata.RequestID)
	}

	return &Result{Listing: listing}, nil
}

func newListing(output *s3.ListObjectsV2Output) *Listing {
	listing := &Listing{
		KeyCount:    aws.ToInt32(output.KeyCount),
		HasContents: len(output.Contents) > 0,
		Fields:      responseFields(output),
		Metadata:    metadataFromResult(output.ResultMetadata),
	}

	for _, obj := range output.Contents {
		listing.Objects = append(listing.Objects, s3types.Object{
			Key:  aws.ToString(obj.Key),
			Size: aws.ToInt64(obj.Size),
		})
	}

	return listing
}

// responseFields names the top-level fields present in a listing response,
// in the order S3 documents them. ResponseMetadata is always present.
func responseFields(output *s3.ListObjectsV2Output) []string {
	fields := []string{"ResponseMetadata"}
	add := func(name string, present bool) {
		if present {
			fields = append(fields, name)
		}
	}

	add("IsTruncated", output.IsTruncated != nil)
	add("Contents", len(output.Contents) > 0)
	add("Name", output.Name != nil)
	add("Prefix", output.Prefix != nil)
	add("Delimiter", output.Delimiter != nil)
	add("MaxKeys", output.MaxKeys != nil)
	add("CommonPrefixes", len(output.CommonPrefixes) > 0)
	add("EncodingType", output.EncodingType != "")
	add("KeyCount", output.KeyCount != nil)
	add("ContinuationToken", output.ContinuationToken != nil)
	add("NextContinuationToken", output.NextContinuationToken != nil)
	add("StartAfter", output.StartAfter != nil)
	add("RequestCharged", output.RequestCharged != "")

	return fields
}

func metadataFromResult(md middleware.Metadata) s3types.ResponseMetadata {
	var out s3types.ResponseMetadata

	if id, ok := awsmiddleware.GetRequestIDMetadata(md); ok {
		out.RequestID = id
	}
	if id, ok := s3.GetHostIDMetadata(md); ok {
		out.HostID = id
	}
	if resp, ok := awsmiddleware.GetRawResponse(md).(*smithyhttp.Response); ok && resp != nil && resp.Response != nil {
		out.HTTPStatusCode = resp.StatusCode
		out.HTTPHeaders = s3types.HeaderMap(resp.Header)
	}
	if results, ok := retry.GetAttemptResults(md); ok && len(results.Results) > 1 {
		out.RetryAttempts = len(results.Results) - 1
	}

	return out
}
