package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ghiblihub/catalog-api/internal/api/metrics"
	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// RBAC lets the request through only when the authenticated role equals
// role exactly. There is no hierarchy: admin does not imply the catalog roles.
func RBAC(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Claims(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if claims.Role != role {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// Require is the access-control gate for one route: Auth followed by
// RBAC(role). Every decision is counted.
func Require(validator ports.TokenValidator, role string) echo.MiddlewareFunc {
	auth := Auth(validator)
	rbac := RBAC(role)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reached := false
			err := auth(rbac(func(c echo.Context) error {
				reached = true
				metrics.AccessDecisionsTotal.WithLabelValues(role, "allowed").Inc()
				return next(c)
			}))(c)

			if !reached {
				outcome := "unauthenticated"
				if errors.Is(err, domain.ErrForbidden) {
					outcome = "forbidden"
				}
				metrics.AccessDecisionsTotal.WithLabelValues(role, outcome).Inc()
			}
			return err
		}
	}
}
