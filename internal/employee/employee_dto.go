package employee

type CreateEmployeeRequest struct {
	EmpCode       string   `json:"empCode" binding:"required,max=32"`
	EmpName       string   `json:"empName" binding:"required,max=100"`
	LastName      string   `json:"lastName" binding:"omitempty,max=100"`
	Category      string   `json:"category" binding:"required,oneof='SJJ STAFF' GUEST ERECTOR 'SERVICE ENGINEER' AUDITOR OTHERS"`
	Department    string   `json:"department" binding:"required,max=100"`
	Status        string   `json:"status" binding:"omitempty,oneof=Active Inactive"`
	BreakfastRate *float64 `json:"breakfastRate" binding:"omitempty,gte=0"`
	LunchRate     *float64 `json:"lunchRate" binding:"omitempty,gte=0"`
	DinnerRate    *float64 `json:"dinnerRate" binding:"omitempty,gte=0"`
	JoinDate      string   `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	Gender        string   `json:"gender"`
	DateOfBirth   string   `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	ContactNo     string   `json:"contactNo" binding:"omitempty,max=20"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Pincode       string   `json:"pincode" binding:"omitempty,max=10"`
	WeekOff       string   `json:"weekOff"`
}

// UpdateEmployeeRequest replaces every mutable field; empCode selects the record.
type UpdateEmployeeRequest CreateEmployeeRequest

type EmployeeResponse struct {
	EmpCode       string   `json:"empCode"`
	EmpName       string   `json:"empName"`
	LastName      string   `json:"lastName,omitempty"`
	Category      string   `json:"category"`
	Department    string   `json:"department"`
	Status        string   `json:"status"`
	BreakfastRate *float64 `json:"breakfastRate"`
	LunchRate     *float64 `json:"lunchRate"`
	DinnerRate    *float64 `json:"dinnerRate"`
	JoinDate      string   `json:"joinDate,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	DateOfBirth   string   `json:"dateOfBirth,omitempty"`
	ContactNo     string   `json:"contactNo,omitempty"`
	Address       string   `json:"address,omitempty"`
	City          string   `json:"city,omitempty"`
	Pincode       string   `json:"pincode,omitempty"`
	WeekOff       string   `json:"weekOff,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// EmployeeOptionResponse feeds the meal entry form.
type EmployeeOptionResponse struct {
	EmpCode    string `json:"empCode"`
	EmpName    string `json:"empName"`
	Category   string `json:"category"`
	Department string `json:"department"`
}
