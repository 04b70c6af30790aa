// Package token signs and verifies HMAC access tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
)

// DefaultTTL applies when the configured lifetime is zero or negative.
const DefaultTTL = 15 * time.Minute

var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// claims is the token payload: subject, role and the registered time claims.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates access tokens with a shared secret.
type Service struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewService returns a token service for one of HS256, HS384 or HS512.
func NewService(secret, algorithm string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: empty secret")
	}
	method, err := signingMethod(algorithm)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), method: method, ttl: ttl, now: time.Now}, nil
}

func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("token: %w: %q", ErrUnsupportedAlgorithm, alg)
}

// TTL reports the lifetime given to issued tokens.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue signs a token for subject carrying role, expiring after the configured TTL.
func (s *Service) Issue(subject, role string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	tok := jwt.NewWithClaims(s.method, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate checks signature, algorithm and expiry. A token without a subject
// or without an exp claim is rejected. Every failure wraps domain.ErrInvalidToken.
func (s *Service) Validate(raw string) (*domain.AccessClaims, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tok.Valid || c.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.AccessClaims{
		Subject:   c.Subject,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
