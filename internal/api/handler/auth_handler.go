package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/api/metrics"
	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// AttemptResetter clears the failed-attempt counter of a client.
type AttemptResetter interface {
	Reset(ctx context.Context, key string) error
}

type AuthHandler struct {
	authService ports.AuthService
	attempts    AttemptResetter
	log         zerolog.Logger
}

// NewAuthHandler returns an AuthHandler. attempts may be nil when login
// rate limiting is disabled.
func NewAuthHandler(authService ports.AuthService, attempts AttemptResetter, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, attempts: attempts, log: log}
}

// Login authenticates a user and returns a bearer access token.
//
// @Summary      Login
// @Description  Accepts an OAuth2 password form or a JSON body.
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if h.attempts != nil {
		if err := h.attempts.Reset(c.Request().Context(), c.RealIP()); err != nil {
			h.log.Warn().Err(err).Msg("reset login attempts")
		}
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: res.AccessToken, TokenType: res.TokenType})
}
