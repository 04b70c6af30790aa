package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// UserRepository implements ports.UserRepository on the users table.
type UserRepository struct {
	table *Table[userRecord]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{table: NewTable[userRecord](db, "Role")}
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter, page ports.Page) ([]*domain.User, error) {
	page = page.Normalize()
	rows, err := r.table.List(ctx, filter.Fields(), page.Limit, page.Start)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	row, err := r.table.Get(ctx, id)
	if err != nil {
		return nil, userError("get user", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := newUserRecord(user)
	if err := r.table.Create(ctx, rec); err != nil {
		return nil, userError("create user", err)
	}
	return r.Get(ctx, rec.ID)
}

func (r *UserRepository) Update(ctx context.Context, id int64, changes ports.UserChanges) (*domain.User, error) {
	row, err := r.table.Update(ctx, id, changes.Fields())
	if err != nil {
		return nil, userError("update user", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.table.Delete(ctx, id); err != nil {
		return userError("delete user", err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.table.Count(ctx)
}

func userError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: username or email already registered: %w", op, domain.ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrRoleNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
