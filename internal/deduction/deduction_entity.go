package deduction

import "time"

type DeductionRecord struct {
	TxnNo            string    `gorm:"column:txn_no;primaryKey" dynamodbav:"txn_no"`
	Date             string    `gorm:"column:date" dynamodbav:"date"`
	EmpCode          string    `gorm:"column:emp_code;index" dynamodbav:"emp_code"`
	Name             string    `gorm:"column:name" dynamodbav:"name"`
	Mess             *float64  `gorm:"column:mess" dynamodbav:"mess"`
	Uniform          *float64  `gorm:"column:uniform" dynamodbav:"uniform"`
	House            *float64  `gorm:"column:house" dynamodbav:"house"`
	Tax              *float64  `gorm:"column:tax" dynamodbav:"tax"`
	AdditionalColumn *string   `gorm:"column:additional_column" dynamodbav:"additional_column"`
	Total            float64   `gorm:"column:total;not null;default:0" dynamodbav:"total"`
	CreatedAt        time.Time `gorm:"column:created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" dynamodbav:"updated_at"`
}

func (DeductionRecord) TableName() string {
	return "deductions"
}
