package meal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-messbill/internal/employee"
	employeeerrors "go-messbill/internal/employee/errors"
	mealerrors "go-messbill/internal/meal/errors"
	"go-messbill/internal/recordstore"
	"go-messbill/internal/shared/contextutil"
	"go-messbill/internal/shared/counter"

	"go.uber.org/zap"
)

const idPrefix = "MEAL"

// EmployeeFinder resolves the employee a meal is recorded for.
// employee.Repository satisfies it.
type EmployeeFinder interface {
	FindByCode(ctx context.Context, empCode string) (*employee.Employee, error)
}

//go:generate mockgen -source=meal_service.go -destination=mock/meal_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMealRequest) (MealResponse, error)
	CreateBatch(ctx context.Context, req BatchMealRequest) (BatchMealResponse, error)
	GetAll(ctx context.Context, date string) ([]MealResponse, error)
	GetByIdno(ctx context.Context, idno string) (MealResponse, error)
	Update(ctx context.Context, req UpdateMealRequest) (MealResponse, error)
	Delete(ctx context.Context, idno string) error
}

type service struct {
	repo      Repository
	employees EmployeeFinder
	counter   counter.Repository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeFinder, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("meal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meal.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		counter:   counterRepo,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) nextIdno(ctx context.Context) (string, error) {
	n, err := s.counter.GetNextValue(ctx, counter.TypeMealID)
	if err != nil {
		return "", fmt.Errorf("generate meal idno: %w", err)
	}
	return counter.FormatID(idPrefix, n), nil
}

func (s *service) Create(ctx context.Context, req CreateMealRequest) (MealResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	idno := strings.TrimSpace(req.Idno)
	if idno != "" {
		existing, err := s.repo.FindByIdno(ctx, idno)
		if err != nil && !errors.Is(err, recordstore.ErrNotFound) {
			return MealResponse{}, err
		}
		if existing != nil {
			log.Warn("create meal duplicate idno", zap.String("idno", idno))
			return MealResponse{}, mealerrors.ErrMealAlreadyExists
		}
	} else {
		generated, err := s.nextIdno(ctx)
		if err != nil {
			log.Error("create meal idno failed", zap.Error(err))
			return MealResponse{}, err
		}
		idno = generated
	}

	now := s.now()
	rec := &MealRecord{
		Idno:       idno,
		EmpCode:    req.EmpCode,
		Date:       req.Date,
		Breakfast:  req.Breakfast,
		Lunch:      req.Lunch,
		Dinner:     req.Dinner,
		EmpName:    req.EmpName,
		Category:   req.Category,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if rec.EmpName == "" && s.employees != nil {
		if empl, err := s.employees.FindByCode(ctx, req.EmpCode); err == nil {
			denormalize(rec, empl)
		}
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		log.Error("create meal persist failed", zap.String("idno", idno), zap.Error(err))
		return MealResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*rec), nil
}

// CreateBatch stores one record per entry that selects at least one meal.
// Entries are independent: a failing entry does not stop the rest.
func (s *service) CreateBatch(ctx context.Context, req BatchMealRequest) (BatchMealResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	resp := BatchMealResponse{
		Date:  req.Date,
		Items: make([]BatchItemResult, 0, len(req.Entries)),
	}

	existing, err := s.repo.FindByDate(ctx, req.Date)
	if err != nil {
		log.Error("batch meal lookup failed", zap.String("date", req.Date), zap.Error(err))
		return BatchMealResponse{}, mapRepositoryError(err)
	}
	recorded := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		recorded[m.EmpCode] = struct{}{}
	}

	for _, entry := range req.Entries {
		item := s.createBatchEntry(ctx, log, req.Date, entry, recorded)
		switch item.Status {
		case BatchStatusCreated:
			resp.Created++
		case BatchStatusSkipped:
			resp.Skipped++
		default:
			resp.Failed++
		}
		resp.Items = append(resp.Items, item)
	}

	log.Info("batch meal submitted",
		zap.String("date", req.Date),
		zap.Int("created", resp.Created),
		zap.Int("skipped", resp.Skipped),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

func (s *service) createBatchEntry(
	ctx context.Context,
	log *zap.Logger,
	date string,
	entry BatchMealEntry,
	recorded map[string]struct{},
) BatchItemResult {
	item := BatchItemResult{EmpCode: entry.EmpCode}

	if !entry.Breakfast && !entry.Lunch && !entry.Dinner {
		item.Status = BatchStatusSkipped
		item.Message = "no meal selected"
		return item
	}

	empl, err := s.employees.FindByCode(ctx, entry.EmpCode)
	if err != nil {
		item.Status = BatchStatusFailed
		if errors.Is(err, recordstore.ErrNotFound) {
			item.Message = employeeerrors.ErrEmployeeNotFound.Message
		} else {
			item.Message = err.Error()
		}
		return item
	}

	if _, ok := recorded[entry.EmpCode]; ok {
		// not rejected; reports count every record
		log.Warn("meal already recorded for employee on date",
			zap.String("emp_code", entry.EmpCode),
			zap.String("date", date),
		)
	}

	idno, err := s.nextIdno(ctx)
	if err != nil {
		item.Status = BatchStatusFailed
		item.Message = err.Error()
		return item
	}

	now := s.now()
	rec := &MealRecord{
		Idno:      idno,
		EmpCode:   entry.EmpCode,
		Date:      date,
		Breakfast: entry.Breakfast,
		Lunch:     entry.Lunch,
		Dinner:    entry.Dinner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	denormalize(rec, empl)

	if err := s.repo.Create(ctx, rec); err != nil {
		log.Error("batch meal persist failed", zap.String("idno", idno), zap.Error(err))
		item.Status = BatchStatusFailed
		item.Message = mapRepositoryError(err).Error()
		return item
	}

	recorded[entry.EmpCode] = struct{}{}
	item.Idno = idno
	item.Status = BatchStatusCreated
	return item
}

// GetAll lists every meal record, or only those on date when it is set.
// Stored dates in either accepted shape match.
func (s *service) GetAll(ctx context.Context, date string) ([]MealResponse, error) {
	var want time.Time
	narrow := date != ""
	if narrow {
		parsed, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return nil, mealerrors.ErrInvalidDate
		}
		want = parsed
	}

	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all meals failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]MealResponse, 0, len(recs))
	for _, r := range recs {
		if narrow {
			day, ok := CalendarDate(r.Date)
			if !ok || !day.Equal(want) {
				continue
			}
		}
		res = append(res, mapToResponse(r))
	}
	return res, nil
}

func (s *service) GetByIdno(ctx context.Context, idno string) (MealResponse, error) {
	rec, err := s.repo.FindByIdno(ctx, idno)
	if err != nil {
		return MealResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, req UpdateMealRequest) (MealResponse, error) {
	rec := &MealRecord{
		Idno:       req.Idno,
		EmpCode:    req.EmpCode,
		Date:       req.Date,
		Breakfast:  req.Breakfast,
		Lunch:      req.Lunch,
		Dinner:     req.Dinner,
		EmpName:    req.EmpName,
		Category:   req.Category,
		Department: req.Department,
		UpdatedAt:  s.now(),
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("update meal failed", zap.String("idno", req.Idno), zap.Error(err))
		return MealResponse{}, mapRepositoryError(err)
	}

	updated, err := s.repo.FindByIdno(ctx, req.Idno)
	if err != nil {
		return MealResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, idno string) error {
	return mapRepositoryError(s.repo.Delete(ctx, idno))
}

func denormalize(rec *MealRecord, empl *employee.Employee) {
	rec.EmpName = empl.EmpName
	rec.Category = empl.Category
	rec.Department = empl.Department
}

func mapToResponse(rec MealRecord) MealResponse {
	resp := MealResponse{
		Idno:       rec.Idno,
		EmpCode:    rec.EmpCode,
		Date:       rec.Date,
		Breakfast:  rec.Breakfast,
		Lunch:      rec.Lunch,
		Dinner:     rec.Dinner,
		EmpName:    rec.EmpName,
		Category:   rec.Category,
		Department: rec.Department,
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !rec.UpdatedAt.IsZero() {
		resp.UpdatedAt = rec.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
