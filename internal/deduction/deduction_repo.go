package deduction

import (
	"context"
	"go-messbill/internal/recordstore"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *DeductionRecord) error
	FindAll(ctx context.Context) ([]DeductionRecord, error)
	FindByTxnNo(ctx context.Context, txnNo string) (*DeductionRecord, error)
	Update(ctx context.Context, rec *DeductionRecord) error
	Delete(ctx context.Context, txnNo string) error
}

type repository struct {
	table recordstore.Table[DeductionRecord]
}

func NewRepository(table recordstore.Table[DeductionRecord]) Repository {
	return &repository{table: table}
}

func (r *repository) Create(ctx context.Context, rec *DeductionRecord) error {
	return r.table.InsertIfAbsent(ctx, rec)
}

func (r *repository) FindAll(ctx context.Context) ([]DeductionRecord, error) {
	return r.table.Scan(ctx, nil)
}

func (r *repository) FindByTxnNo(ctx context.Context, txnNo string) (*DeductionRecord, error) {
	return r.table.Get(ctx, txnNo)
}

func (r *repository) Update(ctx context.Context, rec *DeductionRecord) error {
	return r.table.Update(ctx, rec.TxnNo, recordstore.Fields{
		"date":              rec.Date,
		"emp_code":          rec.EmpCode,
		"name":              rec.Name,
		"mess":              rec.Mess,
		"uniform":           rec.Uniform,
		"house":             rec.House,
		"tax":               rec.Tax,
		"additional_column": rec.AdditionalColumn,
		"total":             rec.Total,
		"updated_at":        rec.UpdatedAt,
	})
}

func (r *repository) Delete(ctx context.Context, txnNo string) error {
	return r.table.Delete(ctx, txnNo)
}
