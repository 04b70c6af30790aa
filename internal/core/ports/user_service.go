package ports

import (
	"context"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
)

// CreateUserInput carries a new account. Password is plaintext here and is
// hashed by the service.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	RoleName string
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
// RoleName takes precedence over RoleID when both are set.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	RoleName *string
	RoleID   *int64
}

// UserService defines the user administration use cases.
type UserService interface {
	List(ctx context.Context, filter UserFilter, page Page) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
