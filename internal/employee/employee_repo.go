package employee

import (
	"context"
	"go-messbill/internal/recordstore"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByStatus(ctx context.Context, status string) ([]Employee, error)
	FindByCode(ctx context.Context, empCode string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, empCode string) error
}

type repository struct {
	table recordstore.Table[Employee]
}

func NewRepository(table recordstore.Table[Employee]) Repository {
	return &repository{table: table}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.table.InsertIfAbsent(ctx, empl)
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	return r.table.Scan(ctx, nil)
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Employee, error) {
	return r.table.Scan(ctx, recordstore.Filter{"status": status})
}

func (r *repository) FindByCode(ctx context.Context, empCode string) (*Employee, error) {
	return r.table.Get(ctx, empCode)
}

// Update rewrites every mutable attribute. emp_code and created_at never change.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.table.Update(ctx, empl.EmpCode, recordstore.Fields{
		"emp_name":       empl.EmpName,
		"last_name":      empl.LastName,
		"category":       empl.Category,
		"department":     empl.Department,
		"status":         empl.Status,
		"breakfast_rate": empl.BreakfastRate,
		"lunch_rate":     empl.LunchRate,
		"dinner_rate":    empl.DinnerRate,
		"join_date":      empl.JoinDate,
		"gender":         empl.Gender,
		"date_of_birth":  empl.DateOfBirth,
		"contact_no":     empl.ContactNo,
		"address":        empl.Address,
		"city":           empl.City,
		"pincode":        empl.Pincode,
		"week_off":       empl.WeekOff,
		"updated_at":     empl.UpdatedAt,
	})
}

func (r *repository) Delete(ctx context.Context, empCode string) error {
	return r.table.Delete(ctx, empCode)
}
