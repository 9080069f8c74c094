package meal

type CreateMealRequest struct {
	Idno       string `json:"idno" binding:"omitempty,max=64"`
	EmpCode    string `json:"empCode" binding:"required,max=32"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Breakfast  bool   `json:"breakfast"`
	Lunch      bool   `json:"lunch"`
	Dinner     bool   `json:"dinner"`
	EmpName    string `json:"empName" binding:"omitempty,max=100"`
	Category   string `json:"category" binding:"omitempty,max=50"`
	Department string `json:"department" binding:"omitempty,max=100"`
}

type UpdateMealRequest struct {
	Idno       string `json:"idno" binding:"required,max=64"`
	EmpCode    string `json:"empCode" binding:"required,max=32"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Breakfast  bool   `json:"breakfast"`
	Lunch      bool   `json:"lunch"`
	Dinner     bool   `json:"dinner"`
	EmpName    string `json:"empName" binding:"omitempty,max=100"`
	Category   string `json:"category" binding:"omitempty,max=50"`
	Department string `json:"department" binding:"omitempty,max=100"`
}

type BatchMealEntry struct {
	EmpCode   string `json:"empCode" binding:"required,max=32"`
	Breakfast bool   `json:"breakfast"`
	Lunch     bool   `json:"lunch"`
	Dinner    bool   `json:"dinner"`
}

// BatchMealRequest records one day's meal selections for many employees.
type BatchMealRequest struct {
	Date    string           `json:"date" binding:"required,datetime=2006-01-02"`
	Entries []BatchMealEntry `json:"entries" binding:"required,min=1,max=500,dive"`
}

const (
	BatchStatusCreated = "created"
	BatchStatusSkipped = "skipped"
	BatchStatusFailed  = "failed"
)

type BatchItemResult struct {
	EmpCode string `json:"empCode"`
	Idno    string `json:"idno,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BatchMealResponse struct {
	Date    string            `json:"date"`
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Failed  int               `json:"failed"`
	Items   []BatchItemResult `json:"items"`
}

type MealResponse struct {
	Idno       string `json:"idno"`
	EmpCode    string `json:"empCode"`
	Date       string `json:"date"`
	Breakfast  bool   `json:"breakfast"`
	Lunch      bool   `json:"lunch"`
	Dinner     bool   `json:"dinner"`
	EmpName    string `json:"empName"`
	Category   string `json:"category"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}
