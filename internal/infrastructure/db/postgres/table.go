package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultLimit and DefaultStart apply when List gets a non-positive limit
	// or a negative start.
	DefaultLimit = 100
	DefaultStart = 0

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Table is the generic query layer over one gorm model: equality-filtered
// paginated listing plus get/create/update/delete by integer id. Rows are
// always listed in ascending id order.
type Table[R any] struct {
	db      *gorm.DB
	preload []string
}

// NewTable returns a Table for R. Associations named in preload are loaded
// on every read.
func NewTable[R any](db *gorm.DB, preload ...string) *Table[R] {
	return &Table[R]{db: db, preload: preload}
}

func (t *Table[R]) read(ctx context.Context) *gorm.DB {
	q := t.db.WithContext(ctx).Model(new(R))
	for _, p := range t.preload {
		q = q.Preload(p)
	}
	return q
}

// List returns rows whose columns equal every value in filters. An empty
// filter matches everything.
func (t *Table[R]) List(ctx context.Context, filters map[string]any, limit, start int) ([]R, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if start < 0 {
		start = DefaultStart
	}

	q := t.read(ctx)
	if len(filters) > 0 {
		q = q.Where(filters)
	}

	rows := make([]R, 0)
	if err := q.Order("id ASC").Limit(limit).Offset(start).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Get returns gorm.ErrRecordNotFound when id does not resolve.
func (t *Table[R]) Get(ctx context.Context, id int64) (*R, error) {
	var row R
	if err := t.read(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// Create inserts row and fills in its generated id. Associations are not
// written.
func (t *Table[R]) Create(ctx context.Context, row *R) error {
	return translate(t.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error)
}

// Update sets the given columns on the row with id and returns the stored row.
// An empty change set only verifies that the row exists.
func (t *Table[R]) Update(ctx context.Context, id int64, fields map[string]any) (*R, error) {
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(new(R)).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return gorm.ErrRecordNotFound
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(new(R)).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return t.Get(ctx, id)
}

// Delete removes the row with id. It returns gorm.ErrRecordNotFound when
// nothing was deleted.
func (t *Table[R]) Delete(ctx context.Context, id int64) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(R))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *Table[R]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(R)).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// translate maps driver constraint errors onto gorm's sentinels for dialects
// that do not translate them already.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return gorm.ErrDuplicatedKey
		case pgForeignKeyViolation:
			return gorm.ErrForeignKeyViolated
		}
	}
	return err
}
