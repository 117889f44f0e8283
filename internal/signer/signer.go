package signer

import (
	"bytes"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"tokenswap/internal/domain"
)

const authScheme = "HMAC"

// Signature is the material put into the Authorization header of a provider call.
type Signature struct {
	AuthHeader string
	Timestamp  string
}

// SignedRequest holds the exact bytes that were signed. Transports must send Body as is.
type SignedRequest struct {
	Body          []byte
	ContentDigest string
	Signature
}

// Verify checks that the bytes about to be transmitted are the ones that were signed.
func (r SignedRequest) Verify(body []byte) error {
	if !bytes.Equal(r.Body, body) || contentDigest(body) != r.ContentDigest {
		return domain.ErrSerializationMismatch
	}
	return nil
}

type Signer struct {
	secret []byte
	now    func() time.Time
}

// Sign computes HMAC-SHA256(secret, ts || method || endpoint || hex(md5(body))).
func (s *Signer) Sign(body []byte, method, endpoint string) Signature {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(ts))
	mac.Write([]byte(method))
	mac.Write([]byte(endpoint))
	mac.Write([]byte(contentDigest(body)))

	return Signature{
		AuthHeader: authScheme + " " + ts + ":" + hex.EncodeToString(mac.Sum(nil)),
		Timestamp:  ts,
	}
}

// NewRequest serializes body once and signs those bytes.
func (s *Signer) NewRequest(body any, method, endpoint string) (SignedRequest, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return SignedRequest{}, fmt.Errorf("failed to serialize request body: %w", err)
	}
	return SignedRequest{
		Body:          raw,
		ContentDigest: contentDigest(raw),
		Signature:     s.Sign(raw, method, endpoint),
	}, nil
}

func contentDigest(body []byte) string {
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}

type Option func(*Signer)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

func New(secret string, opts ...Option) *Signer {
	s := &Signer{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
