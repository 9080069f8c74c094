package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin      = 10.0
	pdfTableTop    = 25.0
	pdfHeaderH     = 8.0
	pdfRowH        = 7.0
	pdfFooterGap   = 23.0
	pdfFooterSpan  = 180.0
	pdfFooterStep  = 60.0
	pdfFont        = "Helvetica"
	pdfFontSize    = 8.0
	pdfTitleSize   = 10.0
	pdfCurrencySym = "Rs."
)

var (
	employeeColWidths = []float64{22, 45, 35, 25, 22, 22, 27, 27, 27, 25}
	categoryColWidths = []float64{97, 60, 60, 60}
)

type pdfTable struct {
	headers []string
	widths  []float64
	// boldCol is rendered bold in every data row; -1 for none.
	boldCol int
	align   []string
	rows    [][]string
}

// EmployeePDF renders the per-employee table on landscape A4 pages.
// Core PDF fonts cannot draw the rupee glyph, so amounts use "Rs.".
func EmployeePDF(rows []EmployeeTotal, heading Heading, f Formatter) ([]byte, error) {
	return outputPDF(employeePDF(rows, heading, f.WithSymbol(pdfCurrencySym)))
}

func CategoryPDF(totals CategoryTotals, heading Heading) ([]byte, error) {
	return outputPDF(categoryPDF(totals, heading))
}

func employeePDF(rows []EmployeeTotal, heading Heading, f Formatter) *fpdf.Fpdf {
	table := pdfTable{
		headers: employeeHeaders,
		widths:  employeeColWidths,
		boldCol: len(employeeHeaders) - 1,
		align:   []string{"C", "L", "C", "C", "C", "C", "R", "R", "R", "R"},
	}
	for _, r := range rows {
		table.rows = append(table.rows, []string{
			r.EmpCode, r.EmpName, r.Department,
			strconv.Itoa(r.BreakfastDays), strconv.Itoa(r.LunchDays), strconv.Itoa(r.DinnerDays),
			f.Amount(r.BreakfastTotal, FooterDecimals),
			f.Amount(r.LunchTotal, FooterDecimals),
			f.Amount(r.DinnerTotal, FooterDecimals),
			f.Amount(r.TotalAmount, FooterDecimals),
		})
	}
	return renderPDF(heading, table)
}

func categoryPDF(totals CategoryTotals, heading Heading) *fpdf.Fpdf {
	table := pdfTable{
		headers: categoryHeaders,
		widths:  categoryColWidths,
		boldCol: -1,
		align:   []string{"L", "C", "C", "C"},
	}
	for _, r := range totals.Rows() {
		table.rows = append(table.rows, []string{
			r.Category, strconv.Itoa(r.Breakfast), strconv.Itoa(r.Lunch), strconv.Itoa(r.Dinner),
		})
	}
	return renderPDF(heading, table)
}

func renderPDF(heading Heading, table pdfTable) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	// rows are placed by hand so the header can repeat on each page
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTextColor(0, 0, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	bottom := pageH - pdfMargin

	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	company := tr(heading.Company)
	pdf.Text((pageW-pdf.GetStringWidth(company))/2, 10, company)

	pdf.SetFont(pdfFont, "", pdfTitleSize)
	pdf.Text(pdfMargin, 16, tr(pdfPeriodLine(heading)))

	pdf.SetY(pdfTableTop)
	drawTableHeader(pdf, table, tr)

	if len(table.rows) == 0 {
		pdf.SetFont(pdfFont, "", pdfFontSize)
		pdf.CellFormat(sum(table.widths), pdfRowH, noMealsText, "1", 1, "C", false, 0, "")
	}

	for _, row := range table.rows {
		if pdf.GetY()+pdfRowH > bottom {
			pdf.AddPage()
			pdf.SetY(pdfMargin)
			drawTableHeader(pdf, table, tr)
		}
		for i, cell := range row {
			style := ""
			if i == table.boldCol {
				style = "B"
			}
			pdf.SetFont(pdfFont, style, pdfFontSize)
			text := fitText(pdf, tr(cell), table.widths[i]-2)
			pdf.CellFormat(table.widths[i], pdfRowH, text, "1", 0, table.align[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	footerY := pdf.GetY() + pdfFooterGap
	if footerY > bottom {
		pdf.AddPage()
		footerY = pdfMargin + pdfFooterGap
	}

	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	footerX := (pageW - pdfFooterSpan) / 2
	pdf.Text(footerX, footerY, "Prepared by")
	pdf.Text(footerX+pdfFooterStep, footerY, "Checked by")
	pdf.Text(footerX+2*pdfFooterStep, footerY, "Approved by")

	return pdf
}

func drawTableHeader(pdf *fpdf.Fpdf, table pdfTable, tr func(string) string) {
	pdf.SetFont(pdfFont, "B", pdfFontSize)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range table.headers {
		pdf.CellFormat(table.widths[i], pdfHeaderH, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// fitText trims text that would overflow a cell. text is already in the
// single-byte font encoding, so trimming by byte is safe.
func fitText(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > width {
		text = text[:len(text)-1]
	}
	return text + "..."
}

func outputPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfPeriodLine(h Heading) string {
	month := time.Month(h.Period.Month).String()[:3]
	line := fmt.Sprintf("%s: %s %d", h.Title, month, h.Period.Year)
	if h.Period.Date != "" {
		line += ", Date: " + h.Period.Date
	}
	return line
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
