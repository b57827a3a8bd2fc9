// Client for the miniobject S3-compatible storage gateway.
//
// The client implements the gateway's object operation contract (put, get,
// head, delete, list and presigned URLs) on top of the custom HMAC scheme in
// pkg/s3auth. It holds only immutable state (credentials, base URL,
// collaborators), so a single Client may be shared freely across goroutines.
//
// Everything transport-related is delegated: connections, TLS, redirects,
// pooling and timeouts belong to the Transport collaborator, and the only
// cancellation mechanism is the context passed to each operation. The client
// itself never retries and never interprets response bodies beyond reading
// them into memory.
package s3client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/miniobject/s3ctl/pkg/s3auth"
)

// Transport issues a single HTTP exchange. *http.Client satisfies it;
// anything that owns connection lifecycle and timeouts will do.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries everything needed to construct a Client. BaseURL,
// AccessKey and SecretKey are required; Transport and Logger default to
// http.DefaultClient and a fresh logrus logger.
type Config struct {
	BaseURL   string
	AccessKey string
	SecretKey string
	Transport Transport
	Logger    logrus.FieldLogger
}

// Client talks to one gateway with one set of credentials.
type Client struct {
	baseURL   string
	signer    *s3auth.Signer
	transport Transport
	log       logrus.FieldLogger

	// Overridable for tests; the Date header and presign expiry are both
	// derived from this clock.
	now func() time.Time
}

// New validates cfg and returns a ready Client. All configuration failures
// surface here, before any request is attempted.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL must not be empty")
	}
	signer, err := s3auth.NewSigner(s3auth.Credentials{
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid credentials")
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultClient
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		signer:    signer,
		transport: transport,
		log:       log,
		now:       time.Now,
	}, nil
}

// do signs and dispatches one request. path is the canonical path and is the
// only part of the URL covered by the signature; rawQuery is appended after
// signing, which is how the protocol defines it (see pkg/s3auth).
func (c *Client) do(ctx context.Context, method, path, rawQuery string, headers map[string]string, body []byte) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request for "+path)
	}
	req = req.WithContext(ctx)
	req.URL.RawQuery = rawQuery

	// One timestamp per request, shared between the Date header and the
	// signature. Regenerating it would race the clock and invalidate the
	// signature on a second boundary.
	date := s3auth.HTTPDate(c.now())
	req.Header.Set("Date", date)
	req.Header.Set("Authorization", c.signer.AuthorizationHeader(method, path, date))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.Debugf("%s %s (%d body bytes)", method, req.URL, len(body))

	resp, err := c.transport.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &abortedError{cause: err}
		}
		return nil, &transportError{method: method, url: req.URL.String(), cause: err}
	}
	return resp, nil
}
