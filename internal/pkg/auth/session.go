package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// SessionSigner issues and verifies web session tokens. The token only
// names the principal; role and liveness are always re-resolved from the
// user store by the access gate.
type SessionSigner interface {
	Issue(userID int64) (string, error)
	Parse(token string) (int64, error)
}

// Options tunes token lifetimes.
type Options struct {
	TTL time.Duration
}

// HMACSessionSigner implements SessionSigner with HMAC-SHA256 signatures
// over a userID:expiry payload.
type HMACSessionSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACSessionSigner builds a signer with the provided secret and options.
func NewHMACSessionSigner(secret string, opts Options) *HMACSessionSigner {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACSessionSigner{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed session token for the user.
func (s *HMACSessionSigner) Issue(userID int64) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d:%d", userID, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Parse validates the token signature and expiry and returns the user ID.
func (s *HMACSessionSigner) Parse(token string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return 0, ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACSessionSigner) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
