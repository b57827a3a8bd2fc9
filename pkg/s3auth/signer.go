// HMAC-SHA256 request signing for the miniobject gateway.
//
// The gateway uses its own scheme rather than AWS SigV4. Header-mode requests
// sign the string "method\npath\ndate" and carry the result in an
// Authorization header tagged "S3-HMAC-SHA256". Presigned URLs sign
// "method\nbucket/key\nexpires" and carry the result in query parameters.
// The two signing strings are not interchangeable: header mode signs the
// request path with its leading slash, presign mode signs "bucket/key"
// without one. The server validates both forms exactly as written here, so
// neither may be normalized.
//
// Query strings are never part of the signed message. Listing filters and the
// presign parameters themselves are appended after signing, which means they
// are not integrity-protected. That is a known limitation of the protocol,
// not something this package should harden on its own.
package s3auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Scheme is the Authorization header tag for header-mode authentication.
const Scheme = "S3-HMAC-SHA256"

// httpDateLayout is the RFC1123-style layout the gateway expects in the Date
// header. The same string doubles as signing input, so it must be produced
// once per request and reused verbatim.
const httpDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Credentials identify a gateway account. SecretKey never leaves this
// package.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Signer computes gateway signatures from a fixed set of credentials. It
// performs no I/O and is safe for concurrent use.
type Signer struct {
	creds Credentials
}

// NewSigner validates the credentials and returns a Signer. Empty keys are
// rejected here so that a misconfigured client fails before its first
// request rather than with a 403 from the gateway.
func NewSigner(creds Credentials) (*Signer, error) {
	if creds.AccessKey == "" {
		return nil, errors.New("access key must not be empty")
	}
	if creds.SecretKey == "" {
		return nil, errors.New("secret key must not be empty")
	}
	return &Signer{creds: creds}, nil
}

// AccessKey returns the access key these signatures are attributed to.
func (s *Signer) AccessKey() string {
	return s.creds.AccessKey
}

// SignHeader computes the header-mode signature for a request. The path is
// the canonical request path ("/bucket/key" or "/bucket") with no query
// string; date must be the exact string sent in the Date header, formatted
// by HTTPDate.
func (s *Signer) SignHeader(method, path, date string) string {
	return s.sign(method + "\n" + path + "\n" + date)
}

// SignPresigned computes the query-mode signature for a presigned URL.
// expires is an absolute Unix timestamp in seconds; the URL stays valid
// through that second.
func (s *Signer) SignPresigned(method, bucket, key string, expires int64) string {
	return s.sign(method + "\n" + bucket + "/" + key + "\n" + strconv.FormatInt(expires, 10))
}

// AuthorizationHeader renders the full header-mode Authorization value,
// e.g. `S3-HMAC-SHA256 AccessKey=AKEXAMPLE,Signature=deadbeef`.
func (s *Signer) AuthorizationHeader(method, path, date string) string {
	return Scheme + " AccessKey=" + s.creds.AccessKey + ",Signature=" + s.SignHeader(method, path, date)
}

func (s *Signer) sign(stringToSign string) string {
	mac := hmac.New(sha256.New, []byte(s.creds.SecretKey))
	mac.Write([]byte(stringToSign))
	return hex.EncodeToString(mac.Sum(nil))
}

// HTTPDate formats t the way the gateway expects Date headers: RFC1123 with
// a literal "GMT" zone, always in UTC.
func HTTPDate(t time.Time) string {
	return t.UTC().Format(httpDateLayout)
}
