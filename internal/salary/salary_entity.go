package salary

import "time"

type SalaryRecord struct {
	EmpCode    string    `gorm:"column:emp_code;primaryKey" dynamodbav:"emp_code"`
	Name       string    `gorm:"column:name" dynamodbav:"name"`
	Department string    `gorm:"column:department" dynamodbav:"department"`
	Basic      *float64  `gorm:"column:basic" dynamodbav:"basic"`
	HRA        *float64  `gorm:"column:hra" dynamodbav:"hra"`
	DA         *float64  `gorm:"column:da" dynamodbav:"da"`
	Special    *float64  `gorm:"column:special" dynamodbav:"special"`
	Allowance  *float64  `gorm:"column:allowance" dynamodbav:"allowance"`
	Bonus      *float64  `gorm:"column:bonus" dynamodbav:"bonus"`
	Holiday    *float64  `gorm:"column:holiday" dynamodbav:"holiday"`
	Total      float64   `gorm:"column:total;not null;default:0" dynamodbav:"total"`
	CreatedAt  time.Time `gorm:"column:created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" dynamodbav:"updated_at"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}
