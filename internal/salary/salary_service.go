package salary

import (
	"context"
	"time"

	salaryerrors "go-messbill/internal/salary/errors"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByEmpCode(ctx context.Context, empCode string) (SalaryResponse, error)
	Update(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, empCode string) error
	SeedDefault(ctx context.Context, empCode, name, department string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error) {
	existing, err := s.repo.FindAllByEmpCode(ctx, req.EmpCode)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	if len(existing) > 0 {
		return SalaryResponse{}, salaryerrors.ErrSalaryAlreadyExists
	}

	now := s.now()
	rec := fromRequest(req)
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.repo.Create(ctx, rec); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*rec), nil
}

// SeedDefault stores an all-zero salary record for a newly created employee.
func (s *service) SeedDefault(ctx context.Context, empCode, name, department string) error {
	_, err := s.Create(ctx, CreateSalaryRequest{
		EmpCode:    empCode,
		Name:       name,
		Department: department,
	})
	return err
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryResponse, len(recs))
	for i, r := range recs {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByEmpCode(ctx context.Context, empCode string) (SalaryResponse, error) {
	rec, err := s.repo.FindByEmpCode(ctx, empCode)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error) {
	rec := fromRequest(CreateSalaryRequest(req))
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	updated, err := s.repo.FindByEmpCode(ctx, req.EmpCode)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, empCode string) error {
	return mapRepositoryError(s.repo.Delete(ctx, empCode))
}

// Total sums the present components; a missing component counts as zero.
func Total(components ...*float64) float64 {
	sum := decimal.Zero
	for _, c := range components {
		if c == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*c))
	}
	return sum.InexactFloat64()
}

func fromRequest(req CreateSalaryRequest) *SalaryRecord {
	rec := &SalaryRecord{
		EmpCode:    req.EmpCode,
		Name:       req.Name,
		Department: req.Department,
		Basic:      req.Basic,
		HRA:        req.HRA,
		DA:         req.DA,
		Special:    req.Special,
		Allowance:  req.Allowance,
		Bonus:      req.Bonus,
		Holiday:    req.Holiday,
	}
	rec.Total = Total(rec.Basic, rec.HRA, rec.DA, rec.Special, rec.Allowance, rec.Bonus, rec.Holiday)
	return rec
}

func mapToResponse(rec SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		EmpCode:    rec.EmpCode,
		Name:       rec.Name,
		Department: rec.Department,
		Basic:      rec.Basic,
		HRA:        rec.HRA,
		DA:         rec.DA,
		Special:    rec.Special,
		Allowance:  rec.Allowance,
		Bonus:      rec.Bonus,
		Holiday:    rec.Holiday,
		Total:      rec.Total,
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !rec.UpdatedAt.IsZero() {
		resp.UpdatedAt = rec.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
