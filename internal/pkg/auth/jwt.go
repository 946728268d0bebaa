package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// MobileClaims carries the bearer token payload of the mobile surface.
// The embedded role is informational only; the access gate re-checks the
// stored role on every request.
type MobileClaims struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsMobile bool   `json:"isMobile"`
	jwt.RegisteredClaims
}

// BearerSigner issues and verifies mobile bearer tokens.
type BearerSigner interface {
	Issue(userID int64, email, role string) (string, error)
	Parse(token string) (*MobileClaims, error)
}

// JWTBearerSigner implements BearerSigner with HS256-signed JWTs.
type JWTBearerSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTBearerSigner builds a signer with the provided secret and lifetime.
func NewJWTBearerSigner(secret string, ttl time.Duration) *JWTBearerSigner {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &JWTBearerSigner{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed mobile bearer token.
func (s *JWTBearerSigner) Issue(userID int64, email, role string) (string, error) {
	now := time.Now()
	claims := MobileClaims{
		UserID:   userID,
		Email:    email,
		Role:     role,
		IsMobile: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates the token and returns its claims. Tokens without the
// mobile flag are rejected: web sessions never double as bearer tokens.
func (s *JWTBearerSigner) Parse(token string) (*MobileClaims, error) {
	claims := &MobileClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.IsMobile {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
