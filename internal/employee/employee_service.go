package employee

import (
	"context"
	"encoding/json"
	"errors"
	"go-messbill/internal/events"
	"go-messbill/internal/messaging/kafka"
	"go-messbill/internal/shared/contextutil"
	"sort"
	"strings"
	"time"

	employeeerrors "go-messbill/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options:active"
	optionsCacheTTL    = time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByCode(ctx context.Context, empCode string) (EmployeeResponse, error)
	GetOptions(ctx context.Context, department string) ([]EmployeeOptionResponse, error)
	GetDepartments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, empCode string) error
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, rdb, logger...)
}

// NewServiceWithOutbox also queues an employee_created event for every new
// employee. The outbox write is not atomic with the record write.
func NewServiceWithOutbox(
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("emp_code", req.EmpCode),
	)

	existing, err := s.repo.FindByCode(ctx, req.EmpCode)
	if err != nil && !errors.Is(mapRepositoryError(err), employeeerrors.ErrEmployeeNotFound) {
		log.Error("create employee lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if existing != nil {
		log.Warn("create employee duplicate emp_code", zap.String("emp_code", req.EmpCode))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}

	now := s.now()
	empl := fromRequest(req)
	empl.CreatedAt = now
	empl.UpdatedAt = now

	if err := s.repo.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.queueCreatedEvent(ctx, rid, empl); err != nil {
			// the record is stored; a lost event only skips salary seeding
			log.Error("create employee outbox persist failed",
				zap.String("emp_code", empl.EmpCode),
				zap.Error(err),
			)
		} else {
			log.Info("create employee outbox queued", zap.String("emp_code", empl.EmpCode))
		}
	}

	s.invalidateOptions(ctx)

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("emp_code", empl.EmpCode),
	)
	return mapToResponse(*empl), nil
}

func (s *service) queueCreatedEvent(ctx context.Context, rid string, empl *Employee) error {
	event := events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreatedEventType,
		RequestID:  rid,
		EmpCode:    empl.EmpCode,
		EmpName:    empl.EmpName,
		Department: empl.Department,
		Category:   empl.Category,
		OccurredAt: empl.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.EmpCode,
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByCode(ctx context.Context, empCode string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by code requested", zap.String("emp_code", empCode))
	empl, err := s.repo.FindByCode(ctx, empCode)
	if err != nil {
		s.logger.Warn("get employee by code failed", zap.String("emp_code", empCode), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// GetOptions lists active employees, optionally narrowed to one department.
// The full active list is cached; the department filter runs on the cached copy.
func (s *service) GetOptions(ctx context.Context, department string) ([]EmployeeOptionResponse, error) {
	options, err := s.activeOptions(ctx)
	if err != nil {
		return nil, err
	}

	if department == "" {
		return options, nil
	}

	filtered := make([]EmployeeOptionResponse, 0, len(options))
	for _, o := range options {
		if o.Department == department {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *service) activeOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (any, error) {
		empls, err := s.repo.FindByStatus(ctx, StatusActive)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, 0, len(empls))
		for _, e := range empls {
			resp = append(resp, EmployeeOptionResponse{
				EmpCode:    e.EmpCode,
				EmpName:    e.EmpName,
				Category:   e.Category,
				Department: e.Department,
			})
		}
		sort.SliceStable(resp, func(i, j int) bool { return resp[i].EmpCode < resp[j].EmpCode })

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

// GetDepartments returns the distinct, sorted departments of active employees.
func (s *service) GetDepartments(ctx context.Context) ([]string, error) {
	options, err := s.activeOptions(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	departments := make([]string, 0)
	for _, o := range options {
		d := strings.TrimSpace(o.Department)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		departments = append(departments, d)
	}
	sort.Strings(departments)
	return departments, nil
}

func (s *service) Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("emp_code", req.EmpCode))

	empl := fromRequest(CreateEmployeeRequest(req))
	empl.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, empl); err != nil {
		log.Warn("update employee persist failed", zap.String("emp_code", req.EmpCode), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	updated, err := s.repo.FindByCode(ctx, req.EmpCode)
	if err != nil {
		log.Error("update employee reload failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	log.Info("update employee success", zap.String("emp_code", req.EmpCode))
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, empCode string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("emp_code", empCode))

	if err := s.repo.Delete(ctx, empCode); err != nil {
		log.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	log.Info("delete employee success", zap.String("emp_code", empCode))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func fromRequest(req CreateEmployeeRequest) *Employee {
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	return &Employee{
		EmpCode:       strings.TrimSpace(req.EmpCode),
		EmpName:       req.EmpName,
		LastName:      req.LastName,
		Category:      req.Category,
		Department:    req.Department,
		Status:        status,
		BreakfastRate: req.BreakfastRate,
		LunchRate:     req.LunchRate,
		DinnerRate:    req.DinnerRate,
		JoinDate:      req.JoinDate,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		ContactNo:     req.ContactNo,
		Address:       req.Address,
		City:          req.City,
		Pincode:       req.Pincode,
		WeekOff:       req.WeekOff,
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpCode:       empl.EmpCode,
		EmpName:       empl.EmpName,
		LastName:      empl.LastName,
		Category:      empl.Category,
		Department:    empl.Department,
		Status:        empl.Status,
		BreakfastRate: empl.BreakfastRate,
		LunchRate:     empl.LunchRate,
		DinnerRate:    empl.DinnerRate,
		JoinDate:      empl.JoinDate,
		Gender:        empl.Gender,
		DateOfBirth:   empl.DateOfBirth,
		ContactNo:     empl.ContactNo,
		Address:       empl.Address,
		City:          empl.City,
		Pincode:       empl.Pincode,
		WeekOff:       empl.WeekOff,
		CreatedAt:     formatTime(empl.CreatedAt),
		UpdatedAt:     formatTime(empl.UpdatedAt),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
