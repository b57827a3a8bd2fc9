package s3client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// OperationError is any non-2xx answer from the gateway. The raw body is
// kept so callers can tell a 404 from a 403 from a 416 and still inspect the
// gateway's XML error document if they want to.
type OperationError struct {
	StatusCode int
	Body       []byte
}

func (e *OperationError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("gateway returned HTTP %d", e.StatusCode)
	}
	body := e.Body
	if len(body) > 512 {
		body = body[:512]
	}
	return fmt.Sprintf("gateway returned HTTP %d: %s", e.StatusCode, body)
}

// transportError wraps a failure below the HTTP layer: connection refused,
// TLS handshake, timeout inside the transport. It never carries a status
// code.
type transportError struct {
	method string
	url    string
	cause  error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("transport failed for %s %s: %v", e.method, e.url, e.cause)
}

func (e *transportError) Cause() error { return e.cause }

// abortedError reports a request cut short by the caller's context. Kept
// separate from transportError so a local timeout is never mistaken for a
// gateway rejection.
type abortedError struct {
	cause error
}

func (e *abortedError) Error() string {
	return fmt.Sprintf("operation aborted: %v", e.cause)
}

func (e *abortedError) Cause() error { return e.cause }

// StatusCode extracts the HTTP status from an operation failure. ok is false
// for transport and aborted errors, which have no status.
func StatusCode(err error) (code int, ok bool) {
	if oe, isOp := errors.Cause(err).(*OperationError); isOp {
		return oe.StatusCode, true
	}
	return 0, false
}

// IsNotFound reports whether err is a gateway 404.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsTransport reports whether err comes from the transport collaborator
// rather than from the gateway.
func IsTransport(err error) bool {
	_, ok := errors.Cause(err).(*transportError)
	return ok
}

// IsAborted reports whether err is the caller's own cancellation or
// deadline, as opposed to a remote failure.
func IsAborted(err error) bool {
	_, ok := errors.Cause(err).(*abortedError)
	return ok
}
