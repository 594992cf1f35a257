// Package s3probe checks that a set of AWS credentials can reach an S3 bucket.
// It wraps AWS SDK v2 to issue a single bounded listing request and reports
// either what came back or why the service refused it.
//
// A probe never issues more than one request: the SDK retryer is replaced
// with a no-op retryer and the listing is capped at MaxKeys objects with no
// pagination.
//
// The outcome of a probe is a Result carrying exactly one of:
//   - a Listing, when the service answered the request
//   - a ServiceError, when the service rejected it with a code and message
//
// Every other failure (missing credentials, unknown profile, DNS or transport
// errors) is returned as a Go error.
//
// Example usage:
//
//	client, err := s3probe.New(ctx, s3probe.WithProfile("staging"))
//	if err != nil {
//	    return err
//	}
//
//	result, err := client.Probe(ctx)
//	if err != nil {
//	    return err
//	}
//	return s3probe.WriteReport(os.Stdout, result)
package s3probe
