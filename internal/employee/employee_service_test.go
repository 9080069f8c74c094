package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-messbill/internal/employee"
	employeeerrors "go-messbill/internal/employee/errors"
	"go-messbill/internal/events"
	"go-messbill/internal/recordstore"
	"go-messbill/internal/shared/contextutil"

	employeeMock "go-messbill/internal/employee/mock"
	"go-messbill/internal/messaging/kafka"
	kafkaMock "go-messbill/internal/messaging/kafka/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(repo, outboxRepo, rdb)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func rate(v float64) *float64 { return &v }

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmpCode:       "E001",
		EmpName:       "Asha",
		Category:      "SJJ STAFF",
		Department:    "Production",
		BreakfastRate: rate(50),
		LunchRate:     rate(80),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - queues employee_created event", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "req-123")
		req := createRequest()

		deps.repo.EXPECT().
			FindByCode(ctx, "E001").
			Return(nil, recordstore.ErrNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "E001", e.EmpCode)
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.False(t, e.CreatedAt.IsZero())
				assert.Nil(t, e.DinnerRate)
				return nil
			})

		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, "req-123", evt.RequestID)
				assert.Equal(t, "E001", evt.AggregateID)
				assert.Equal(t, events.EmployeeCreatedTopic, evt.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, evt.Status)

				var payload events.EmployeeCreatedEvent
				require.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, "Production", payload.Department)
				return nil
			})

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "E001", resp.EmpCode)
		assert.Equal(t, "Active", resp.Status)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate detected by lookup", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			FindByCode(ctx, "E001").
			Return(&employee.Employee{EmpCode: "E001"}, nil)

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("duplicate detected by conditional insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			FindByCode(ctx, "E001").
			Return(nil, recordstore.ErrNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(recordstore.ErrConditionFailed)

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("lookup failure is returned as is", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		storeErr := errors.New("throughput exceeded")

		deps.repo.EXPECT().
			FindByCode(ctx, "E001").
			Return(nil, storeErr)

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestEmployeeService_GetByCode(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		FindByCode(ctx, "E404").
		Return(nil, recordstore.ErrNotFound)

	_, err := deps.service.GetByCode(ctx, "E404")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		req := employee.UpdateEmployeeRequest(createRequest())
		req.Status = employee.StatusInactive

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.StatusInactive, e.Status)
				assert.False(t, e.UpdatedAt.IsZero())
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)
		deps.repo.EXPECT().
			FindByCode(ctx, "E001").
			Return(&employee.Employee{EmpCode: "E001", Status: employee.StatusInactive}, nil)

		resp, err := deps.service.Update(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, employee.StatusInactive, resp.Status)
	})

	t.Run("missing employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			Return(recordstore.ErrNotFound)

		_, err := deps.service.Update(ctx, employee.UpdateEmployeeRequest(createRequest()))

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	active := []employee.Employee{
		{EmpCode: "E002", EmpName: "Ravi", Category: "GUEST", Department: "Production", Status: "Active"},
		{EmpCode: "E001", EmpName: "Asha", Category: "SJJ STAFF", Department: "Stores", Status: "Active"},
	}
	options := []employee.EmployeeOptionResponse{
		{EmpCode: "E001", EmpName: "Asha", Category: "SJJ STAFF", Department: "Stores"},
		{EmpCode: "E002", EmpName: "Ravi", Category: "GUEST", Department: "Production"},
	}
	cached, err := json.Marshal(options)
	require.NoError(t, err)

	t.Run("cache miss loads active employees and caches them", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().
			FindByStatus(ctx, employee.StatusActive).
			Return(active, nil)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, cached, time.Hour).SetVal("OK")

		got, err := deps.service.GetOptions(ctx, "Production")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "E002", got[0].EmpCode)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		got, err := deps.service.GetOptions(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, options, got)
	})

	t.Run("departments are distinct and sorted", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		got, err := deps.service.GetDepartments(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"Production", "Stores"}, got)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().Delete(ctx, "E001").Return(nil)
	deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

	assert.NoError(t, deps.service.Delete(ctx, "E001"))
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}
