package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextKeyClaims   = "claims"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Auth extracts the bearer token, validates it and injects the claims into
// the context. A missing or malformed header fails with ErrUnauthenticated,
// a token that does not verify with ErrInvalidToken.
func Auth(validator ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domain.ErrUnauthenticated
			}

			claims, err := validator.Validate(raw)
			if err != nil {
				return err
			}

			c.Set(ContextKeyClaims, claims)
			c.Set(ContextKeyUsername, claims.Subject)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Claims returns the claims stored by Auth, if any.
func Claims(c echo.Context) (*domain.AccessClaims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*domain.AccessClaims)
	return claims, ok && claims != nil
}
