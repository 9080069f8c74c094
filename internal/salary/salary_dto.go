package salary

type CreateSalaryRequest struct {
	EmpCode    string   `json:"empCode" binding:"required,max=32"`
	Name       string   `json:"name" binding:"omitempty,max=100"`
	Department string   `json:"department" binding:"omitempty,max=100"`
	Basic      *float64 `json:"basic" binding:"omitempty,gte=0"`
	HRA        *float64 `json:"hra" binding:"omitempty,gte=0"`
	DA         *float64 `json:"da" binding:"omitempty,gte=0"`
	Special    *float64 `json:"special" binding:"omitempty,gte=0"`
	Allowance  *float64 `json:"allowance" binding:"omitempty,gte=0"`
	Bonus      *float64 `json:"bonus" binding:"omitempty,gte=0"`
	Holiday    *float64 `json:"holiday" binding:"omitempty,gte=0"`
}

type UpdateSalaryRequest CreateSalaryRequest

type SalaryResponse struct {
	EmpCode    string   `json:"empCode"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Basic      *float64 `json:"basic"`
	HRA        *float64 `json:"hra"`
	DA         *float64 `json:"da"`
	Special    *float64 `json:"special"`
	Allowance  *float64 `json:"allowance"`
	Bonus      *float64 `json:"bonus"`
	Holiday    *float64 `json:"holiday"`
	Total      float64  `json:"total"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty"`
}
