package counter

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestRepository_GetNextValue(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sequence_counters")).
		WithArgs(TypeMealID).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	got, err := repo.GetNextValue(context.Background(), TypeMealID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNextValue_Error(t *testing.T) {
	db, mock := newGormMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sequence_counters")).
		WithArgs(TypeDeductionID).
		WillReturnError(errors.New("db down"))

	_, err := repo.GetNextValue(context.Background(), TypeDeductionID)
	assert.Error(t, err)
}

func TestRedisRepository_GetNextValue(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := NewRedisRepository(rdb)

	mock.ExpectIncr("counter:" + TypeMealID).SetVal(3)

	got, err := repo.GetNextValue(context.Background(), TypeMealID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "MEAL-000042", FormatID("MEAL", 42))
	assert.Equal(t, "TXN-1234567", FormatID("TXN", 1234567))
}
