package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const noMealsText = "No Meals Data Available"

var (
	employeeHeaders = []string{
		"EMP CODE", "EMP NAME", "DEPARTMENT",
		"BREAKFAST DAYS", "LUNCH DAYS", "DINNER DAYS",
		"BREAKFAST TOTAL", "LUNCH TOTAL", "DINNER TOTAL", "GRAND TOTAL",
	}
	categoryHeaders = []string{"CATEGORY", "BREAKFAST COUNT", "LUNCH COUNT", "DINNER COUNT"}
)

// Heading is the title block printed above every exported table.
type Heading struct {
	Company string
	Title   string
	Period  Period
}

const (
	headerRow    = 5
	firstDataRow = headerRow + 1
)

func EmployeeWorkbook(rows []EmployeeTotal, heading Heading, f Formatter) ([]byte, error) {
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{
			r.EmpCode, r.EmpName, r.Department,
			r.BreakfastDays, r.LunchDays, r.DinnerDays,
			f.Amount(r.BreakfastTotal, FooterDecimals),
			f.Amount(r.LunchTotal, FooterDecimals),
			f.Amount(r.DinnerTotal, FooterDecimals),
			f.Amount(r.TotalAmount, FooterDecimals),
		})
	}
	return buildWorkbook("Meals Report", heading, employeeHeaders, data)
}

func CategoryWorkbook(totals CategoryTotals, heading Heading) ([]byte, error) {
	data := make([][]any, 0, len(totals))
	for _, r := range totals.Rows() {
		data = append(data, []any{r.Category, r.Breakfast, r.Lunch, r.Dinner})
	}
	return buildWorkbook("Category Wise", heading, categoryHeaders, data)
}

func buildWorkbook(sheet string, heading Heading, headers []string, data [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCDCDC"}},
	})
	if err != nil {
		return nil, err
	}

	titles := []string{heading.Company, heading.Title, workbookPeriodLine(heading.Period)}
	for i, text := range titles {
		row := i + 1
		start, end := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
		if err := f.SetCellValue(sheet, start, text); err != nil {
			return nil, err
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, start, end, titleStyle); err != nil {
			return nil, err
		}
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	headerCell := fmt.Sprintf("A%d", headerRow)
	if err := f.SetSheetRow(sheet, headerCell, &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, headerCell, fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		start, end := fmt.Sprintf("A%d", firstDataRow), fmt.Sprintf("%s%d", lastCol, firstDataRow)
		if err := f.SetCellValue(sheet, start, noMealsText); err != nil {
			return nil, err
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return nil, err
		}
	}
	for i, values := range data {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", firstDataRow+i), &values); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func workbookPeriodLine(p Period) string {
	line := fmt.Sprintf("Month: %s, Year: %d", time.Month(p.Month), p.Year)
	if p.Date != "" {
		line += ", Date: " + p.Date
	}
	return line
}
