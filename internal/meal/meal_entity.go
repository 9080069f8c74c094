package meal

import (
	"strings"
	"time"
)

type MealRecord struct {
	Idno       string    `gorm:"column:idno;primaryKey" dynamodbav:"idno"`
	EmpCode    string    `gorm:"column:emp_code;index" dynamodbav:"emp_code"`
	Date       string    `gorm:"column:date;index" dynamodbav:"date"`
	Breakfast  bool      `gorm:"column:breakfast;not null;default:false" dynamodbav:"breakfast"`
	Lunch      bool      `gorm:"column:lunch;not null;default:false" dynamodbav:"lunch"`
	Dinner     bool      `gorm:"column:dinner;not null;default:false" dynamodbav:"dinner"`
	EmpName    string    `gorm:"column:emp_name" dynamodbav:"emp_name"`
	Category   string    `gorm:"column:category" dynamodbav:"category"`
	Department string    `gorm:"column:department" dynamodbav:"department"`
	CreatedAt  time.Time `gorm:"column:created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" dynamodbav:"updated_at"`
}

func (MealRecord) TableName() string {
	return "meal_records"
}

// HasMeal reports whether at least one meal is selected.
func (m MealRecord) HasMeal() bool {
	return m.Breakfast || m.Lunch || m.Dinner
}

// CalendarDate parses a stored meal date. Older records carry full RFC 3339
// timestamps; those are reduced to their calendar day. ok is false for an
// empty or malformed value.
func CalendarDate(raw string) (day time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
