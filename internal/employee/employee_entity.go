package employee

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee is the employee master record. Rates are per meal; a nil rate
// counts as zero when meals are priced.
type Employee struct {
	EmpCode       string    `gorm:"column:emp_code;primaryKey" dynamodbav:"emp_code"`
	EmpName       string    `gorm:"column:emp_name;not null" dynamodbav:"emp_name"`
	LastName      string    `gorm:"column:last_name" dynamodbav:"last_name"`
	Category      string    `gorm:"column:category;index" dynamodbav:"category"`
	Department    string    `gorm:"column:department;index" dynamodbav:"department"`
	Status        string    `gorm:"column:status;index" dynamodbav:"status"`
	BreakfastRate *float64  `gorm:"column:breakfast_rate" dynamodbav:"breakfast_rate"`
	LunchRate     *float64  `gorm:"column:lunch_rate" dynamodbav:"lunch_rate"`
	DinnerRate    *float64  `gorm:"column:dinner_rate" dynamodbav:"dinner_rate"`
	JoinDate      string    `gorm:"column:join_date" dynamodbav:"join_date"`
	Gender        string    `gorm:"column:gender" dynamodbav:"gender"`
	DateOfBirth   string    `gorm:"column:date_of_birth" dynamodbav:"date_of_birth"`
	ContactNo     string    `gorm:"column:contact_no" dynamodbav:"contact_no"`
	Address       string    `gorm:"column:address" dynamodbav:"address"`
	City          string    `gorm:"column:city" dynamodbav:"city"`
	Pincode       string    `gorm:"column:pincode" dynamodbav:"pincode"`
	WeekOff       string    `gorm:"column:week_off" dynamodbav:"week_off"`
	CreatedAt     time.Time `gorm:"column:created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" dynamodbav:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
