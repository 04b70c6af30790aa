package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// UserService implements user administration: role resolution and password
// hashing happen here, persistence is delegated to the repositories.
type UserService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, log: log}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter, page ports.Page) ([]*domain.User, error) {
	return s.users.List(ctx, filter, page.Normalize())
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

// Create resolves the role by name and stores the user with a hashed password.
// An unknown role name fails with domain.ErrRoleNotFound before anything is written.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role, err := s.roles.FindByName(ctx, in.RoleName)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Str("role", role.Name).Msg("user created")
	return created, nil
}

// Update applies only the supplied fields. A new password is re-hashed and a
// new role name is re-resolved.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	changes := ports.UserChanges{
		Username: in.Username,
		Email:    in.Email,
	}

	switch {
	case in.RoleName != nil:
		role, err := s.roles.FindByName(ctx, *in.RoleName)
		if err != nil {
			return nil, err
		}
		changes.RoleID = &role.ID
	case in.RoleID != nil:
		role, err := s.roles.FindByID(ctx, *in.RoleID)
		if err != nil {
			return nil, err
		}
		changes.RoleID = &role.ID
	}

	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	updated, err := s.users.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
