package ports

import (
	"context"
	"time"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
)

// TokenResult is handed back to a caller that logged in successfully.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(subject, role string) (string, time.Time, error)
}

// TokenValidator verifies access tokens. Every failure wraps domain.ErrInvalidToken.
type TokenValidator interface {
	Validate(token string) (*domain.AccessClaims, error)
}

type AuthService interface {
	// Login returns domain.ErrInvalidCredentials for an unknown user and for
	// a wrong password alike.
	Login(ctx context.Context, username, password string) (*TokenResult, error)
}
