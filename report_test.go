package s3probe

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/internal/testutil"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

func probeReport(t *testing.T, mock *testutil.MockS3Client) string {
	t.Helper()
	result, err := NewWithClient(mock).Probe(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, result))
	return buf.String()
}

func TestWriteReport_Listing(t *testing.T) {
	t.Run("no contents", func(t *testing.T) {
		out := probeReport(t, testutil.NewListingMock(testutil.CreateListObjectsV2Output(DefaultBucket, 5)))
		assert.Equal(t,
			"OK 0\n"+
				"No Contents, response keys: [ResponseMetadata IsTruncated Name Prefix MaxKeys KeyCount]\n",
			out)
	})

	t.Run("two objects", func(t *testing.T) {
		out := probeReport(t, testutil.NewListingMock(testutil.CreateListObjectsV2Output(DefaultBucket, 5,
			testutil.CreateTestObject("a.txt", 3),
			testutil.CreateTestObject("b.txt", 4),
		)))
		assert.Equal(t, "OK 2\na.txt\nb.txt\n", out)
	})

	t.Run("count comes from the response", func(t *testing.T) {
		// KeyCount is printed as reported, not recomputed from the item list.
		result := &Result{Listing: &Listing{
			KeyCount:    7,
			HasContents: true,
			Objects:     []s3types.Object{{Key: "only"}},
		}}
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, result))
		assert.Equal(t, "OK 7\nonly\n", buf.String())
	})
}

func TestWriteReport_Failure(t *testing.T) {
	out := probeReport(t, testutil.NewErrorMock(
		testutil.NewServiceErrorResponse(403, "AccessDenied", "Access Denied", "REQ123", "HOST456")))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ERROR AccessDenied 'Access Denied'", lines[0])
	assert.Equal(t,
		"Full metadata map["+
			"HTTPHeaders:map[content-type:application/xml x-amz-id-2:HOST456 x-amz-request-id:REQ123] "+
			"HTTPStatusCode:403 HostId:HOST456 RequestId:REQ123 RetryAttempts:0]",
		lines[1])
}

func TestWriteReport_FailureWithoutResponse(t *testing.T) {
	result := &Result{Failure: &errors.ServiceError{Code: "InternalError", Message: "We encountered an internal error."}}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, result))
	assert.Equal(t,
		"ERROR InternalError 'We encountered an internal error.'\n"+
			"Full metadata map[HTTPHeaders:map[] HTTPStatusCode:0 HostId: RequestId: RetryAttempts:0]\n",
		buf.String())
}

func TestWriteReport_InvalidResult(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteReport(&buf, nil))
	assert.Error(t, WriteReport(&buf, &Result{}))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestWriteReport_WriteError(t *testing.T) {
	results := []*Result{
		{Listing: &Listing{}},
		{Listing: &Listing{HasContents: true, Objects: []s3types.Object{{Key: "k"}}}},
		{Failure: &errors.ServiceError{Code: "AccessDenied"}},
	}
	for _, r := range results {
		err := WriteReport(failingWriter{}, r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	}
}

func TestQuoteMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Access Denied", want: `'Access Denied'`},
		{in: "", want: `''`},
		{in: "It's gone", want: `'It\'s gone'`},
		{in: `C:\path`, want: `'C:\\path'`},
		{in: `say "hi"`, want: `'say "hi"'`},
		{in: "line1\nline2\t!", want: `'line1\nline2\t!'`},
		{in: "bell\a", want: `'bell\x07'`},
		{in: "café", want: `'café'`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteMessage(tt.in))
		})
	}
}
