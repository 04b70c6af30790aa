package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
)

// RoleRepository implements ports.RoleRepository on the roles table.
type RoleRepository struct {
	table *Table[roleRecord]
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{table: NewTable[roleRecord](db)}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	rows, err := r.table.List(ctx, map[string]any{"name": name}, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("find role: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrRoleNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	row, err := r.table.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return row.toDomain(), nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	rec := &roleRecord{Name: role.Name}
	if err := r.table.Create(ctx, rec); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create role %q: %w", role.Name, domain.ErrConflict)
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *RoleRepository) Count(ctx context.Context) (int64, error) {
	return r.table.Count(ctx)
}
