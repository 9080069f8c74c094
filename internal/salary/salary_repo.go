package salary

import (
	"context"
	"go-messbill/internal/recordstore"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *SalaryRecord) error
	FindAll(ctx context.Context) ([]SalaryRecord, error)
	FindByEmpCode(ctx context.Context, empCode string) (*SalaryRecord, error)
	FindAllByEmpCode(ctx context.Context, empCode string) ([]SalaryRecord, error)
	Update(ctx context.Context, rec *SalaryRecord) error
	Delete(ctx context.Context, empCode string) error
}

type repository struct {
	table recordstore.Table[SalaryRecord]
}

func NewRepository(table recordstore.Table[SalaryRecord]) Repository {
	return &repository{table: table}
}

func (r *repository) Create(ctx context.Context, rec *SalaryRecord) error {
	return r.table.InsertIfAbsent(ctx, rec)
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryRecord, error) {
	return r.table.Scan(ctx, nil)
}

func (r *repository) FindByEmpCode(ctx context.Context, empCode string) (*SalaryRecord, error) {
	return r.table.Get(ctx, empCode)
}

// FindAllByEmpCode scans rather than reads by key; legacy tables were not
// always keyed by emp_code.
func (r *repository) FindAllByEmpCode(ctx context.Context, empCode string) ([]SalaryRecord, error) {
	return r.table.Scan(ctx, recordstore.Filter{"emp_code": empCode})
}

func (r *repository) Update(ctx context.Context, rec *SalaryRecord) error {
	return r.table.Update(ctx, rec.EmpCode, recordstore.Fields{
		"name":       rec.Name,
		"department": rec.Department,
		"basic":      rec.Basic,
		"hra":        rec.HRA,
		"da":         rec.DA,
		"special":    rec.Special,
		"allowance":  rec.Allowance,
		"bonus":      rec.Bonus,
		"holiday":    rec.Holiday,
		"total":      rec.Total,
		"updated_at": rec.UpdatedAt,
	})
}

func (r *repository) Delete(ctx context.Context, empCode string) error {
	return r.table.Delete(ctx, empCode)
}
