package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

const tokenTypeBearer = "bearer"

// dummyHash is compared against when the username is unknown so both
// rejection paths pay for one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)

// AuthService implements login on top of the user store.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenIssuer
	log     zerolog.Logger
	compare func(hash, password []byte) error
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		log:     log,
		compare: bcrypt.CompareHashAndPassword,
	}
}

// Login looks the user up by exact username and checks the password hash.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := s.users.List(ctx, ports.UserFilter{Username: &username}, ports.Page{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		_ = s.compare(dummyHash, []byte(password))
		s.log.Info().Str("username", username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}
	user := users[0]

	if err := s.compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("stored password hash unreadable")
		}
		s.log.Info().Str("username", username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.Username, user.RoleName())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.RoleName()).Msg("login succeeded")

	return &ports.TokenResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
