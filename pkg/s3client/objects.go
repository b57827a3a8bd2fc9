package s3client

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ObjectMetadata is what HEAD returns, read straight off the response
// headers. ETag has its surrounding quotes stripped; LastModified is passed
// through as the gateway sent it.
type ObjectMetadata struct {
	Size         int64
	ETag         string
	ContentType  string
	LastModified string
}

// PutResult reports a successful upload. ETag is the raw header value,
// quotes and all, since the gateway's exact token is what callers compare
// against later.
type PutResult struct {
	ETag string
}

// ByteRange is an inclusive [Start, End] window of an object's bytes.
type ByteRange struct {
	Start int64
	End   int64
}

// PutObject uploads data to /bucket/key. With verifyMD5 set it also sends a
// Content-MD5 header so the gateway can reject a corrupted body. The whole
// payload is hashed in memory; streaming uploads are out of scope.
func (c *Client) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string, verifyMD5 bool) (*PutResult, error) {
	headers := map[string]string{}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}
	if verifyMD5 {
		sum := md5.Sum(data)
		headers["Content-MD5"] = base64.StdEncoding.EncodeToString(sum[:])
	}

	resp, err := c.do(ctx, http.MethodPut, objectPath(bucket, key), "", headers, data)
	if err != nil {
		return nil, err
	}
	if _, err := readBody(resp); err != nil {
		return nil, err
	}
	return &PutResult{ETag: resp.Header.Get("ETag")}, nil
}

// GetObject downloads an object, or a window of it when rng is non-nil.
// The gateway answers a bad range with 416, surfaced like any other
// OperationError.
func (c *Client) GetObject(ctx context.Context, bucket, key string, rng *ByteRange) ([]byte, error) {
	headers := map[string]string{}
	if rng != nil {
		headers["Range"] = fmt.Sprintf("bytes=%d-%d", rng.Start, rng.End)
	}

	resp, err := c.do(ctx, http.MethodGet, objectPath(bucket, key), "", headers, nil)
	if err != nil {
		return nil, err
	}
	return readBody(resp)
}

// HeadObject fetches object metadata without the body.
func (c *Client) HeadObject(ctx context.Context, bucket, key string) (*ObjectMetadata, error) {
	resp, err := c.do(ctx, http.MethodHead, objectPath(bucket, key), "", nil, nil)
	if err != nil {
		return nil, err
	}
	if _, err := readBody(resp); err != nil {
		return nil, err
	}

	size, _ := strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
	return &ObjectMetadata{
		Size:         size,
		ETag:         strings.Trim(resp.Header.Get("ETag"), `"`),
		ContentType:  resp.Header.Get("Content-Type"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}

// DeleteObject removes an object.
func (c *Client) DeleteObject(ctx context.Context, bucket, key string) error {
	resp, err := c.do(ctx, http.MethodDelete, objectPath(bucket, key), "", nil, nil)
	if err != nil {
		return err
	}
	_, err = readBody(resp)
	return err
}

// ListObjects runs a ListObjectsV2 request and returns the gateway's XML
// payload untouched. Decoding lives in pkg/listing so this package stays
// free of response parsing. maxKeys falls back to the gateway default of
// 1000 when zero or negative.
//
// The listing filters ride in the query string and are therefore outside
// the signed message; only the /bucket path is covered by the signature.
func (c *Client) ListObjects(ctx context.Context, bucket, prefix string, maxKeys int) ([]byte, error) {
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	query := url.Values{}
	query.Set("list-type", "2")
	query.Set("prefix", prefix)
	query.Set("max-keys", strconv.Itoa(maxKeys))

	resp, err := c.do(ctx, http.MethodGet, "/"+bucket, query.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}
	return readBody(resp)
}

// PresignURL builds a time-limited capability URL for one object. Pure
// construction, no I/O: possession of the URL stands in for the secret key
// until the returned expiry (Unix seconds) passes. The signature covers
// method, bucket/key and expiry only, so the URL's query parameters carry
// the entire grant.
func (c *Client) PresignURL(bucket, key, method string, expiresIn time.Duration) (presigned string, expires int64) {
	expires = c.now().Add(expiresIn).Unix()
	signature := c.signer.SignPresigned(method, bucket, key, expires)

	query := url.Values{}
	query.Set("AWSAccessKeyId", c.signer.AccessKey())
	query.Set("Expires", strconv.FormatInt(expires, 10))
	query.Set("Signature", signature)

	return c.baseURL + objectPath(bucket, key) + "?" + query.Encode(), expires
}

// objectPath concatenates bucket and key verbatim. No escaping or
// normalization happens here: a key containing '/' or reserved characters
// is the caller's to pass through, matching what the gateway signs against.
func objectPath(bucket, key string) string {
	return "/" + bucket + "/" + key
}

// readBody drains and closes the response, mapping any non-2xx status to an
// OperationError that keeps the status and raw body.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{method: resp.Request.Method, url: resp.Request.URL.String(), cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &OperationError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
