// Package testutil provides an HTTP stand-in for S3.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeS3 serves a fixed S3 response and records the requests it receives.
type FakeS3 struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewFakeS3 starts a server answering every request with status and body.
// The x-amz-request-id and x-amz-id-2 headers are set from requestID and
// hostID. The server is closed on test cleanup.
func NewFakeS3(t *testing.T, status int, body, requestID, hostID string) *FakeS3 {
	t.Helper()

	f := &FakeS3{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/xml")
		w.Header().Set("X-Amz-Request-Id", requestID)
		w.Header().Set("X-Amz-Id-2", hostID)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)

	return f
}

// Requests returns the requests received so far.
func (f *FakeS3) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*http.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// ListBucketResultXML renders a ListObjectsV2 response document.
func ListBucketResultXML(bucket string, maxKeys int, keys ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
	fmt.Fprintf(&b, "<Name>%s</Name>", bucket)
	fmt.Fprintf(&b, "<KeyCount>%d</KeyCount>", len(keys))
	fmt.Fprintf(&b, "<MaxKeys>%d</MaxKeys>", maxKeys)
	b.WriteString("<IsTruncated>false</IsTruncated>")
	for _, key := range keys {
		fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size></Contents>", key, len(key))
	}
	b.WriteString("</ListBucketResult>")
	return b.String()
}

// ErrorXML renders an S3 error document.
func ErrorXML(code, message, requestID, hostID string) string {
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>`+
			`<Error><Code>%s</Code><Message>%s</Message><RequestId>%s</RequestId><HostId>%s</HostId></Error>`,
		code, message, requestID, hostID)
}
