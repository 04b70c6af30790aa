package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// seedBaseline is the row count (roles + users) at or below which the store
// is considered unseeded.
const seedBaseline = 6

// AdminAccount describes the account created on first start.
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// Seeder creates the fixed roles and the initial admin account.
type Seeder struct {
	users ports.UserRepository
	roles ports.RoleRepository
	admin AdminAccount
	log   zerolog.Logger
}

func NewSeeder(users ports.UserRepository, roles ports.RoleRepository, admin AdminAccount, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, roles: roles, admin: admin, log: log}
}

// Seed is a no-op once the store holds more than the seed baseline. Below it,
// missing roles and the admin account are created; existing ones are kept.
func (s *Seeder) Seed(ctx context.Context) error {
	roleCount, err := s.roles.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count roles: %w", err)
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if roleCount+userCount > seedBaseline {
		s.log.Debug().Int64("roles", roleCount).Int64("users", userCount).Msg("store already seeded")
		return nil
	}

	var adminRole *domain.Role
	for _, name := range domain.SeedRoles {
		role, err := s.ensureRole(ctx, name)
		if err != nil {
			return err
		}
		if name == domain.RoleAdmin {
			adminRole = role
		}
	}

	existing, err := s.users.List(ctx, ports.UserFilter{Username: &s.admin.Username}, ports.Page{Limit: 1})
	if err != nil {
		return fmt.Errorf("seed: lookup admin: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := hashPassword(s.admin.Password)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	if _, err := s.users.Create(ctx, &domain.User{
		Username:     s.admin.Username,
		Email:        s.admin.Email,
		PasswordHash: hash,
		RoleID:       adminRole.ID,
		Role:         adminRole,
	}); err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}

	s.log.Info().Str("username", s.admin.Username).Msg("admin account seeded")
	return nil
}

func (s *Seeder) ensureRole(ctx context.Context, name string) (*domain.Role, error) {
	role, err := s.roles.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("seed: lookup role %q: %w", name, err)
	}

	role, err = s.roles.Create(ctx, &domain.Role{Name: name})
	if err != nil {
		return nil, fmt.Errorf("seed: create role %q: %w", name, err)
	}
	s.log.Info().Str("role", name).Msg("role seeded")
	return role, nil
}
