package app

import (
	"context"
	"fmt"

	"go-messbill/internal/config"
	"go-messbill/internal/deduction"
	"go-messbill/internal/employee"
	"go-messbill/internal/meal"
	"go-messbill/internal/messaging/kafka"
	"go-messbill/internal/recordstore"
	"go-messbill/internal/salary"
	"go-messbill/internal/shared/connection"
	"go-messbill/internal/shared/counter"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stores holds one table per record kind plus the id counter and the
// optional outbox. Outbox is nil when the backend has no SQL database.
type Stores struct {
	Employees  recordstore.Table[employee.Employee]
	Salaries   recordstore.Table[salary.SalaryRecord]
	Meals      recordstore.Table[meal.MealRecord]
	Deductions recordstore.Table[deduction.DeductionRecord]
	Counter    counter.Repository
	Outbox     kafka.OutboxRepository

	closeFn func()
}

func (s Stores) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// NewGormStores migrates the record tables on db and wraps them. Counter and
// Outbox are left for the caller.
func NewGormStores(db *gorm.DB) (Stores, error) {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&salary.SalaryRecord{},
		&meal.MealRecord{},
		&deduction.DeductionRecord{},
		&counter.SequenceCounter{},
	); err != nil {
		return Stores{}, fmt.Errorf("auto migrate: %w", err)
	}

	return Stores{
		Employees:  recordstore.NewGormTable[employee.Employee](db, "emp_code"),
		Salaries:   recordstore.NewGormTable[salary.SalaryRecord](db, "emp_code"),
		Meals:      recordstore.NewGormTable[meal.MealRecord](db, "idno"),
		Deductions: recordstore.NewGormTable[deduction.DeductionRecord](db, "txn_no"),
	}, nil
}

func openStores(ctx context.Context, cfg config.Config, rdb *redis.Client) (Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgresStores(ctx, cfg)
	case config.DriverDynamoDB:
		return openDynamoStores(ctx, cfg, rdb)
	default:
		return Stores{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func openPostgresStores(ctx context.Context, cfg config.Config) (Stores, error) {
	db := cfg.Database
	gormDB, err := connection.ConnectGORMWithRetry(db.Host, db.User, db.Password, db.Name, db.Port, db.SSLMode, cfg.MaxRetries)
	if err != nil {
		return Stores{}, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return Stores{}, err
	}

	stores, err := NewGormStores(gormDB)
	if err != nil {
		_ = sqlDB.Close()
		return Stores{}, err
	}
	if err := kafka.EnsureOutboxTable(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return Stores{}, fmt.Errorf("ensure outbox table: %w", err)
	}

	stores.Counter = counter.NewRepository(gormDB)
	stores.Outbox = kafka.NewOutboxRepository(sqlDB)
	stores.closeFn = func() { _ = sqlDB.Close() }
	return stores, nil
}

// openDynamoStores uses the redis counter for ids; DynamoDB has no outbox.
func openDynamoStores(ctx context.Context, cfg config.Config, rdb *redis.Client) (Stores, error) {
	dc := cfg.Dynamo
	client, err := connection.NewDynamoClient(ctx, dc.Region, dc.Endpoint)
	if err != nil {
		return Stores{}, err
	}

	zap.L().Named("app.stores").Info("using dynamodb tables",
		zap.String("employees", dc.EmployeeTable),
		zap.String("meals", dc.MealTable),
		zap.String("salaries", dc.SalaryTable),
		zap.String("deductions", dc.DeductionTable),
	)

	return Stores{
		Employees:  recordstore.NewDynamoTable[employee.Employee](client, dc.EmployeeTable, "emp_code"),
		Salaries:   recordstore.NewDynamoTable[salary.SalaryRecord](client, dc.SalaryTable, "emp_code"),
		Meals:      recordstore.NewDynamoTable[meal.MealRecord](client, dc.MealTable, "idno"),
		Deductions: recordstore.NewDynamoTable[deduction.DeductionRecord](client, dc.DeductionTable, "txn_no"),
		Counter:    counter.NewRedisRepository(rdb),
	}, nil
}
