package deduction

type CreateDeductionRequest struct {
	TxnNo            string   `json:"txnno" binding:"omitempty,max=64"`
	Date             string   `json:"date" binding:"required,datetime=2006-01-02"`
	EmpCode          string   `json:"empCode" binding:"required,max=32"`
	Name             string   `json:"name" binding:"omitempty,max=100"`
	Mess             *float64 `json:"mess" binding:"omitempty,gte=0"`
	Uniform          *float64 `json:"uniform" binding:"omitempty,gte=0"`
	House            *float64 `json:"house" binding:"omitempty,gte=0"`
	Tax              *float64 `json:"tax" binding:"omitempty,gte=0"`
	AdditionalColumn *string  `json:"additionalColumn" binding:"omitempty,max=255"`
}

type UpdateDeductionRequest struct {
	TxnNo            string   `json:"txnno" binding:"required,max=64"`
	Date             string   `json:"date" binding:"required,datetime=2006-01-02"`
	EmpCode          string   `json:"empCode" binding:"required,max=32"`
	Name             string   `json:"name" binding:"omitempty,max=100"`
	Mess             *float64 `json:"mess" binding:"omitempty,gte=0"`
	Uniform          *float64 `json:"uniform" binding:"omitempty,gte=0"`
	House            *float64 `json:"house" binding:"omitempty,gte=0"`
	Tax              *float64 `json:"tax" binding:"omitempty,gte=0"`
	AdditionalColumn *string  `json:"additionalColumn" binding:"omitempty,max=255"`
}

type DeductionResponse struct {
	TxnNo            string   `json:"txnno"`
	Date             string   `json:"date"`
	EmpCode          string   `json:"empCode"`
	Name             string   `json:"name"`
	Mess             *float64 `json:"mess"`
	Uniform          *float64 `json:"uniform"`
	House            *float64 `json:"house"`
	Tax              *float64 `json:"tax"`
	AdditionalColumn *string  `json:"additionalColumn,omitempty"`
	Total            float64  `json:"total"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}
