// Package recordstore is the key-value table capability the feature
// repositories are written against. Each table has a single string key and
// is backed either by PostgreSQL (through gorm) or by DynamoDB.
package recordstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("recordstore: item not found")
	ErrConditionFailed = errors.New("recordstore: item already exists")
)

// Filter selects items whose attributes equal every given value.
// A nil or empty filter selects the whole table.
type Filter map[string]any

// Fields names the attributes an Update replaces, by storage name.
type Fields map[string]any

type Table[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Scan(ctx context.Context, filter Filter) ([]T, error)
	// Put writes unconditionally, replacing any item with the same key.
	Put(ctx context.Context, item *T) error
	// InsertIfAbsent fails with ErrConditionFailed when the key is taken.
	InsertIfAbsent(ctx context.Context, item *T) error
	// Update fails with ErrNotFound instead of creating a new item.
	Update(ctx context.Context, key string, fields Fields) error
	// Delete succeeds whether or not the key exists.
	Delete(ctx context.Context, key string) error
}
