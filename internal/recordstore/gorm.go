package recordstore

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormTable[T any] struct {
	db        *gorm.DB
	keyColumn string
}

// NewGormTable serves T from the table named by its gorm model. keyColumn is
// the primary key column.
func NewGormTable[T any](db *gorm.DB, keyColumn string) Table[T] {
	return &gormTable[T]{db: db, keyColumn: keyColumn}
}

func (t *gormTable[T]) byKey(key string) (string, string) {
	return t.keyColumn + " = ?", key
}

func (t *gormTable[T]) Get(ctx context.Context, key string) (*T, error) {
	var item T
	query, arg := t.byKey(key)

	err := t.db.WithContext(ctx).Where(query, arg).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (t *gormTable[T]) Scan(ctx context.Context, filter Filter) ([]T, error) {
	items := make([]T, 0)

	q := t.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}

	err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: t.keyColumn}}).
		Find(&items).Error
	return items, err
}

func (t *gormTable[T]) Put(ctx context.Context, item *T) error {
	return t.db.WithContext(ctx).Save(item).Error
}

func (t *gormTable[T]) InsertIfAbsent(ctx context.Context, item *T) error {
	res := t.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrConditionFailed
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConditionFailed
	}
	return nil
}

func (t *gormTable[T]) Update(ctx context.Context, key string, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	query, arg := t.byKey(key)
	res := t.db.WithContext(ctx).
		Model(new(T)).
		Where(query, arg).
		Updates(map[string]any(fields))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *gormTable[T]) Delete(ctx context.Context, key string) error {
	query, arg := t.byKey(key)
	return t.db.WithContext(ctx).Where(query, arg).Delete(new(T)).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed")
}
