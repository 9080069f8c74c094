package counter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	TypeMealID      = "meal_idno"
	TypeDeductionID = "deduction_txnno"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

// SequenceCounter backs the postgres implementation.
type SequenceCounter struct {
	CounterType string    `gorm:"column:counter_type;primaryKey"`
	LastValue   int64     `gorm:"column:last_value;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SequenceCounter) TableName() string { return "sequence_counters" }

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// single statement so concurrent callers never observe the same value
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (counter_type, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

type redisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository is used when records live in DynamoDB and there is no
// SQL database to hold the sequence table.
func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	return r.rdb.Incr(ctx, "counter:"+counterType).Result()
}

// FormatID renders prefix-000042 style identifiers.
func FormatID(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
