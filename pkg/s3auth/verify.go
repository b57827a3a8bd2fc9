package s3auth

import (
	"crypto/hmac"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Verification errors. ErrExpired is distinct from ErrBadSignature so that
// callers can report a stale URL differently from a forged one.
var (
	ErrBadSignature = errors.New("signature mismatch")
	ErrExpired      = errors.New("presigned URL has expired")
)

// ParseAuthorization splits a header-mode Authorization value into its
// access key and signature. It accepts exactly the format produced by
// AuthorizationHeader.
func ParseAuthorization(header string) (accessKey, signature string, err error) {
	if !strings.HasPrefix(header, Scheme+" ") {
		return "", "", errors.Errorf("authorization header is not %s", Scheme)
	}
	for _, kv := range strings.Split(strings.TrimPrefix(header, Scheme+" "), ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "AccessKey":
			accessKey = parts[1]
		case "Signature":
			signature = parts[1]
		}
	}
	if accessKey == "" || signature == "" {
		return "", "", errors.New("authorization header is missing AccessKey or Signature")
	}
	return accessKey, signature, nil
}

// VerifyHeader checks a header-mode signature the way the gateway does:
// recompute over method, path and the Date header value, then compare in
// constant time.
func (s *Signer) VerifyHeader(method, path, date, signature string) error {
	expected := s.SignHeader(method, path, date)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrBadSignature
	}
	return nil
}

// VerifyPresigned checks the three presign query parameters against the
// clock. A URL is accepted through the Expires second itself and rejected
// from the next second on, matching the gateway's comparison.
func (s *Signer) VerifyPresigned(method, bucket, key, expiresParam, signature string, now time.Time) error {
	expires, err := strconv.ParseInt(expiresParam, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid Expires parameter")
	}
	if now.Unix() > expires {
		return ErrExpired
	}
	expected := s.SignPresigned(method, bucket, key, expires)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrBadSignature
	}
	return nil
}
