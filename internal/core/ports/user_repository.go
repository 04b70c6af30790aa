package ports

import (
	"context"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
)

const (
	DefaultListLimit = 100
	DefaultListStart = 0
)

// Page bounds a listing. Zero or negative values fall back to the defaults.
type Page struct {
	Limit int
	Start int
}

// Normalize returns the page with defaults applied.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Start < 0 {
		p.Start = DefaultListStart
	}
	return p
}

// UserFilter carries optional equality constraints for listing users.
// Nil fields impose no constraint; set fields are ANDed together.
type UserFilter struct {
	Username *string
	Email    *string
	RoleID   *int64
}

// Fields returns the set constraints keyed by column name.
func (f UserFilter) Fields() map[string]any {
	fields := make(map[string]any, 3)
	if f.Username != nil {
		fields["username"] = *f.Username
	}
	if f.Email != nil {
		fields["email"] = *f.Email
	}
	if f.RoleID != nil {
		fields["role_id"] = *f.RoleID
	}
	return fields
}

// UserChanges is a partial update. A nil field is left untouched; there is
// no way to clear a field. PasswordHash must already be hashed.
type UserChanges struct {
	Username     *string
	Email        *string
	PasswordHash *string
	RoleID       *int64
}

// Fields returns the set changes keyed by column name.
func (c UserChanges) Fields() map[string]any {
	fields := make(map[string]any, 4)
	if c.Username != nil {
		fields["username"] = *c.Username
	}
	if c.Email != nil {
		fields["email"] = *c.Email
	}
	if c.PasswordHash != nil {
		fields["password"] = *c.PasswordHash
	}
	if c.RoleID != nil {
		fields["role_id"] = *c.RoleID
	}
	return fields
}

// UserRepository persists users. Returned users have Role populated.
// Listing is ordered by id ascending.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter, page Page) ([]*domain.User, error)
	// Get returns domain.ErrUserNotFound when id does not resolve.
	Get(ctx context.Context, id int64) (*domain.User, error)
	// Create returns domain.ErrConflict on a duplicate username or email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, changes UserChanges) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// RoleRepository persists roles.
type RoleRepository interface {
	// FindByName returns domain.ErrRoleNotFound when no role has that name.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Count(ctx context.Context) (int64, error)
}
