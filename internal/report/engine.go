// Package report turns employee rates and meal records into monthly totals
// and encodes them as spreadsheets and printable PDFs.
package report

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"go-messbill/internal/employee"
	"go-messbill/internal/meal"
)

// ErrNonFiniteRate is returned when an employee rate is NaN or infinite.
var ErrNonFiniteRate = errors.New("meal rate is not a finite number")

// Period selects the meals a report covers. A non-empty Date (YYYY-MM-DD)
// narrows the match to that day and overrides Year and Month.
type Period struct {
	Year  int
	Month int
	Date  string
}

type periodMatcher struct {
	day     time.Time
	exact   bool
	exactOK bool
	year    int
	month   time.Month
}

func (p Period) matcher() periodMatcher {
	m := periodMatcher{year: p.Year, month: time.Month(p.Month)}
	if p.Date != "" {
		m.exact = true
		m.day, m.exactOK = meal.CalendarDate(p.Date)
	}
	return m
}

// contains never matches a missing or malformed meal date.
func (m periodMatcher) contains(raw string) bool {
	day, ok := meal.CalendarDate(raw)
	if !ok {
		return false
	}
	if m.exact {
		return m.exactOK && day.Equal(m.day)
	}
	return day.Year() == m.year && day.Month() == m.month
}

type EmployeeTotal struct {
	EmpCode        string  `json:"empCode"`
	EmpName        string  `json:"empName"`
	Department     string  `json:"department"`
	BreakfastDays  int     `json:"breakfastDays"`
	LunchDays      int     `json:"lunchDays"`
	DinnerDays     int     `json:"dinnerDays"`
	BreakfastTotal float64 `json:"breakfastTotal"`
	LunchTotal     float64 `json:"lunchTotal"`
	DinnerTotal    float64 `json:"dinnerTotal"`
	TotalAmount    float64 `json:"totalAmount"`
}

// ComputeEmployeeTotals returns one row per employee, in input order.
// Inactive employees are included. Every matching meal record counts, so
// two records for the same day count twice. A missing rate contributes 0.
func ComputeEmployeeTotals(employees []employee.Employee, meals []meal.MealRecord, period Period) ([]EmployeeTotal, error) {
	match := period.matcher()

	byEmployee := make(map[string][]meal.MealRecord)
	for _, m := range meals {
		if match.contains(m.Date) {
			byEmployee[m.EmpCode] = append(byEmployee[m.EmpCode], m)
		}
	}

	rows := make([]EmployeeTotal, 0, len(employees))
	for _, e := range employees {
		breakfastRate, err := rate(e.EmpCode, "breakfast", e.BreakfastRate)
		if err != nil {
			return nil, err
		}
		lunchRate, err := rate(e.EmpCode, "lunch", e.LunchRate)
		if err != nil {
			return nil, err
		}
		dinnerRate, err := rate(e.EmpCode, "dinner", e.DinnerRate)
		if err != nil {
			return nil, err
		}

		row := EmployeeTotal{
			EmpCode:    e.EmpCode,
			EmpName:    e.EmpName,
			Department: e.Department,
		}
		for _, m := range byEmployee[e.EmpCode] {
			if m.Breakfast {
				row.BreakfastDays++
			}
			if m.Lunch {
				row.LunchDays++
			}
			if m.Dinner {
				row.DinnerDays++
			}
		}

		row.BreakfastTotal = float64(row.BreakfastDays) * breakfastRate
		row.LunchTotal = float64(row.LunchDays) * lunchRate
		row.DinnerTotal = float64(row.DinnerDays) * dinnerRate
		row.TotalAmount = row.BreakfastTotal + row.LunchTotal + row.DinnerTotal
		rows = append(rows, row)
	}

	return rows, nil
}

func rate(empCode, mealName string, v *float64) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, fmt.Errorf("employee %s %s rate: %w", empCode, mealName, ErrNonFiniteRate)
	}
	return *v, nil
}

type CategoryCounts struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
}

// CategoryTotals maps each category observed in the period to its meal
// counts. An empty map means no meals, not a failure.
type CategoryTotals map[string]CategoryCounts

func (t CategoryTotals) Categories() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type CategoryRow struct {
	Category string `json:"category"`
	CategoryCounts
}

// Rows lists the totals in category order.
func (t CategoryTotals) Rows() []CategoryRow {
	rows := make([]CategoryRow, 0, len(t))
	for _, name := range t.Categories() {
		rows = append(rows, CategoryRow{Category: name, CategoryCounts: t[name]})
	}
	return rows
}

// ComputeCategoryTotals counts meals per employee category. Meals whose
// employee is unknown or has no category are skipped.
func ComputeCategoryTotals(employees []employee.Employee, meals []meal.MealRecord, period Period) CategoryTotals {
	match := period.matcher()

	categoryOf := make(map[string]string, len(employees))
	for _, e := range employees {
		if e.Category != "" {
			categoryOf[e.EmpCode] = e.Category
		}
	}

	totals := make(CategoryTotals)
	for _, m := range meals {
		if !match.contains(m.Date) {
			continue
		}
		category, ok := categoryOf[m.EmpCode]
		if !ok {
			continue
		}

		counts := totals[category]
		if m.Breakfast {
			counts.Breakfast++
		}
		if m.Lunch {
			counts.Lunch++
		}
		if m.Dinner {
			counts.Dinner++
		}
		totals[category] = counts
	}
	return totals
}

// Summary holds the column sums shown under the employee table.
type Summary struct {
	Employees      int     `json:"employees"`
	BreakfastDays  int     `json:"breakfastDays"`
	LunchDays      int     `json:"lunchDays"`
	DinnerDays     int     `json:"dinnerDays"`
	BreakfastTotal float64 `json:"breakfastTotal"`
	LunchTotal     float64 `json:"lunchTotal"`
	DinnerTotal    float64 `json:"dinnerTotal"`
	GrandTotal     float64 `json:"grandTotal"`
}

func Summarize(rows []EmployeeTotal) Summary {
	s := Summary{Employees: len(rows)}
	for _, r := range rows {
		s.BreakfastDays += r.BreakfastDays
		s.LunchDays += r.LunchDays
		s.DinnerDays += r.DinnerDays
		s.BreakfastTotal += r.BreakfastTotal
		s.LunchTotal += r.LunchTotal
		s.DinnerTotal += r.DinnerTotal
		s.GrandTotal += r.TotalAmount
	}
	return s
}

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

var ErrUnknownSortColumn = errors.New("unknown sort column")

// SortConfig names the column rows are ordered by. An empty Column keeps
// the computed order.
type SortConfig struct {
	Column    string `json:"column,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// Toggle returns the order after column is selected: the same column flips
// direction, any other column starts ascending.
func (c SortConfig) Toggle(column string) SortConfig {
	if column == c.Column {
		next := SortDesc
		if c.Direction == SortDesc {
			next = SortAsc
		}
		return SortConfig{Column: column, Direction: next}
	}
	return SortConfig{Column: column, Direction: SortAsc}
}

type rowComparer func(a, b EmployeeTotal) int

var sortColumns = map[string]rowComparer{
	"empCode":        func(a, b EmployeeTotal) int { return cmp.Compare(a.EmpCode, b.EmpCode) },
	"empName":        func(a, b EmployeeTotal) int { return cmp.Compare(a.EmpName, b.EmpName) },
	"department":     func(a, b EmployeeTotal) int { return cmp.Compare(a.Department, b.Department) },
	"breakfastDays":  func(a, b EmployeeTotal) int { return cmp.Compare(a.BreakfastDays, b.BreakfastDays) },
	"lunchDays":      func(a, b EmployeeTotal) int { return cmp.Compare(a.LunchDays, b.LunchDays) },
	"dinnerDays":     func(a, b EmployeeTotal) int { return cmp.Compare(a.DinnerDays, b.DinnerDays) },
	"breakfastTotal": func(a, b EmployeeTotal) int { return cmp.Compare(a.BreakfastTotal, b.BreakfastTotal) },
	"lunchTotal":     func(a, b EmployeeTotal) int { return cmp.Compare(a.LunchTotal, b.LunchTotal) },
	"dinnerTotal":    func(a, b EmployeeTotal) int { return cmp.Compare(a.DinnerTotal, b.DinnerTotal) },
	"totalAmount":    func(a, b EmployeeTotal) int { return cmp.Compare(a.TotalAmount, b.TotalAmount) },
}

func init() {
	// older clients send the grand total header key
	sortColumns["grandAmount"] = sortColumns["totalAmount"]
}

// SortRows returns a stably sorted copy; equal rows keep their input order
// in both directions.
func SortRows(rows []EmployeeTotal, cfg SortConfig) ([]EmployeeTotal, error) {
	sorted := slices.Clone(rows)
	if cfg.Column == "" {
		return sorted, nil
	}

	compare, ok := sortColumns[cfg.Column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortColumn, cfg.Column)
	}

	if cfg.Direction == SortDesc {
		slices.SortStableFunc(sorted, func(a, b EmployeeTotal) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted, nil
}
