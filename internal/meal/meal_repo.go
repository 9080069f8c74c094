package meal

import (
	"context"
	"go-messbill/internal/recordstore"
)

//go:generate mockgen -source=meal_repo.go -destination=mock/meal_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *MealRecord) error
	FindAll(ctx context.Context) ([]MealRecord, error)
	FindByDate(ctx context.Context, date string) ([]MealRecord, error)
	FindByIdno(ctx context.Context, idno string) (*MealRecord, error)
	Update(ctx context.Context, rec *MealRecord) error
	Delete(ctx context.Context, idno string) error
}

type repository struct {
	table recordstore.Table[MealRecord]
}

func NewRepository(table recordstore.Table[MealRecord]) Repository {
	return &repository{table: table}
}

func (r *repository) Create(ctx context.Context, rec *MealRecord) error {
	return r.table.InsertIfAbsent(ctx, rec)
}

func (r *repository) FindAll(ctx context.Context) ([]MealRecord, error) {
	return r.table.Scan(ctx, nil)
}

// FindByDate matches the stored date string exactly.
func (r *repository) FindByDate(ctx context.Context, date string) ([]MealRecord, error) {
	return r.table.Scan(ctx, recordstore.Filter{"date": date})
}

func (r *repository) FindByIdno(ctx context.Context, idno string) (*MealRecord, error) {
	return r.table.Get(ctx, idno)
}

func (r *repository) Update(ctx context.Context, rec *MealRecord) error {
	return r.table.Update(ctx, rec.Idno, recordstore.Fields{
		"emp_code":   rec.EmpCode,
		"date":       rec.Date,
		"breakfast":  rec.Breakfast,
		"lunch":      rec.Lunch,
		"dinner":     rec.Dinner,
		"emp_name":   rec.EmpName,
		"category":   rec.Category,
		"department": rec.Department,
		"updated_at": rec.UpdatedAt,
	})
}

func (r *repository) Delete(ctx context.Context, idno string) error {
	return r.table.Delete(ctx, idno)
}
