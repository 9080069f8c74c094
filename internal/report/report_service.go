package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-messbill/internal/employee"
	"go-messbill/internal/meal"
	reporterrors "go-messbill/internal/report/errors"
	"go-messbill/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	employeeReportTitle = "Monthly Meals Report"
	categoryReportTitle = "Category Wise Meal Report"

	employeeReportFile = "Monthly_Meals_Report"
	categoryReportFile = "Category_Wise_Meals"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type EmployeeSource interface {
	FindAll(ctx context.Context) ([]employee.Employee, error)
}

type MealSource interface {
	FindAll(ctx context.Context) ([]meal.MealRecord, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	EmployeeReport(ctx context.Context, req ReportRequest) (EmployeeReportResponse, error)
	CategoryReport(ctx context.Context, req ReportRequest) (CategoryReportResponse, error)
	ExportEmployeeReport(ctx context.Context, req ReportRequest) (Artifact, error)
	ExportCategoryReport(ctx context.Context, req ReportRequest) (Artifact, error)
}

type Options struct {
	CompanyName    string
	CurrencySymbol string
	Locale         string
}

type service struct {
	employees EmployeeSource
	meals     MealSource
	opts      Options
	formatter Formatter
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees EmployeeSource, meals MealSource, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		employees: employees,
		meals:     meals,
		opts:      opts,
		formatter: NewFormatter(opts.CurrencySymbol, opts.Locale),
		now:       time.Now,
		logger:    l,
	}
}

// resolvePeriod applies defaults and validates the selector.
func (s *service) resolvePeriod(req ReportRequest) (Period, error) {
	p := Period{Year: req.Year, Month: req.Month, Date: req.Date}

	if p.Date != "" {
		day, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			return Period{}, reporterrors.ErrInvalidPeriod
		}
		if p.Year == 0 && p.Month == 0 {
			p.Year, p.Month = day.Year(), int(day.Month())
		}
	}

	now := s.now()
	if p.Year == 0 {
		p.Year = now.Year()
	}
	if p.Month == 0 {
		p.Month = int(now.Month())
	}

	if p.Month < 1 || p.Month > 12 || p.Year < 1900 || p.Year > 9999 {
		return Period{}, reporterrors.ErrInvalidPeriod
	}
	return p, nil
}

// fetch loads both collections concurrently; the first failure cancels
// the other call.
func (s *service) fetch(ctx context.Context) ([]employee.Employee, []meal.MealRecord, error) {
	var (
		employees []employee.Employee
		meals     []meal.MealRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.employees.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch employees: %w", err)
		}
		employees = res
		return nil
	})
	g.Go(func() error {
		res, err := s.meals.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch meals: %w", err)
		}
		meals = res
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return employees, meals, nil
}

func (s *service) employeeRows(ctx context.Context, req ReportRequest) ([]EmployeeTotal, Period, SortConfig, error) {
	period, err := s.resolvePeriod(req)
	if err != nil {
		return nil, Period{}, SortConfig{}, err
	}

	sortCfg := SortConfig{Column: req.Sort, Direction: req.Dir}
	if sortCfg.Column != "" && sortCfg.Direction == "" {
		sortCfg.Direction = SortAsc
	}

	employees, meals, err := s.fetch(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("report fetch failed", zap.Error(err))
		return nil, Period{}, SortConfig{}, err
	}

	rows, err := ComputeEmployeeTotals(employees, meals, period)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("report computation failed", zap.Error(err))
		return nil, Period{}, SortConfig{}, err
	}

	rows, err = SortRows(rows, sortCfg)
	if errors.Is(err, ErrUnknownSortColumn) {
		return nil, Period{}, SortConfig{}, reporterrors.ErrInvalidSortColumn
	}
	if err != nil {
		return nil, Period{}, SortConfig{}, err
	}
	return rows, period, sortCfg, nil
}

func (s *service) categoryTotals(ctx context.Context, req ReportRequest) (CategoryTotals, Period, error) {
	period, err := s.resolvePeriod(req)
	if err != nil {
		return nil, Period{}, err
	}

	employees, meals, err := s.fetch(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("report fetch failed", zap.Error(err))
		return nil, Period{}, err
	}
	return ComputeCategoryTotals(employees, meals, period), period, nil
}

func (s *service) EmployeeReport(ctx context.Context, req ReportRequest) (EmployeeReportResponse, error) {
	rows, period, sortCfg, err := s.employeeRows(ctx, req)
	if err != nil {
		return EmployeeReportResponse{}, err
	}

	summary := Summarize(rows)
	return EmployeeReportResponse{
		Period:     toPeriodResponse(period),
		Sort:       sortCfg,
		Rows:       rows,
		Summary:    summary,
		GrandTotal: s.formatter.Amount(summary.GrandTotal, FooterDecimals),
	}, nil
}

func (s *service) CategoryReport(ctx context.Context, req ReportRequest) (CategoryReportResponse, error) {
	totals, period, err := s.categoryTotals(ctx, req)
	if err != nil {
		return CategoryReportResponse{}, err
	}

	return CategoryReportResponse{
		Period:     toPeriodResponse(period),
		Categories: totals.Rows(),
		Empty:      len(totals) == 0,
	}, nil
}

func (s *service) ExportEmployeeReport(ctx context.Context, req ReportRequest) (Artifact, error) {
	format, err := exportFormat(req.Format)
	if err != nil {
		return Artifact{}, err
	}

	rows, period, _, err := s.employeeRows(ctx, req)
	if err != nil {
		return Artifact{}, err
	}

	heading := Heading{Company: s.opts.CompanyName, Title: employeeReportTitle, Period: period}
	var body []byte
	if format == FormatPDF {
		body, err = EmployeePDF(rows, heading, s.formatter)
	} else {
		body, err = EmployeeWorkbook(rows, heading, s.formatter)
	}
	if err != nil {
		return Artifact{}, err
	}

	return newArtifact(employeeReportFile, period, format, body), nil
}

func (s *service) ExportCategoryReport(ctx context.Context, req ReportRequest) (Artifact, error) {
	format, err := exportFormat(req.Format)
	if err != nil {
		return Artifact{}, err
	}

	totals, period, err := s.categoryTotals(ctx, req)
	if err != nil {
		return Artifact{}, err
	}

	heading := Heading{Company: s.opts.CompanyName, Title: categoryReportTitle, Period: period}
	var body []byte
	if format == FormatPDF {
		body, err = CategoryPDF(totals, heading)
	} else {
		body, err = CategoryWorkbook(totals, heading)
	}
	if err != nil {
		return Artifact{}, err
	}

	return newArtifact(categoryReportFile, period, format, body), nil
}

func exportFormat(raw string) (string, error) {
	switch raw {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", reporterrors.ErrUnsupportedFormat
	}
}

// ArtifactName is <ReportType>_<month>_<year>.<ext>, month not zero padded.
func ArtifactName(reportType string, period Period, format string) string {
	return fmt.Sprintf("%s_%d_%d.%s", reportType, period.Month, period.Year, format)
}

func newArtifact(reportType string, period Period, format string, body []byte) Artifact {
	contentType := contentTypeXLSX
	if format == FormatPDF {
		contentType = contentTypePDF
	}
	return Artifact{
		Filename:    ArtifactName(reportType, period, format),
		ContentType: contentType,
		Body:        body,
	}
}

func toPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{Year: p.Year, Month: p.Month, Date: p.Date}
}
