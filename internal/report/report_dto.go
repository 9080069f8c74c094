package report

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportRequest is bound from the query string. Zero Year and Month mean
// the current month; a Date without them takes both from the date.
type ReportRequest struct {
	Year   int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Sort   string `form:"sort"`
	Dir    string `form:"dir" binding:"omitempty,oneof=asc desc"`
	Format string `form:"format" binding:"omitempty,oneof=xlsx pdf"`
}

type PeriodResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Date  string `json:"date,omitempty"`
}

type EmployeeReportResponse struct {
	Period     PeriodResponse  `json:"period"`
	Sort       SortConfig      `json:"sort"`
	Rows       []EmployeeTotal `json:"rows"`
	Summary    Summary         `json:"summary"`
	GrandTotal string          `json:"grandTotal"`
}

type CategoryReportResponse struct {
	Period     PeriodResponse `json:"period"`
	Categories []CategoryRow  `json:"categories"`
	Empty      bool           `json:"empty"`
}

// Artifact is an encoded report ready to download.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}
