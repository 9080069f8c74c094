package report_test

import (
	"context"
	"encoding/json"
	"go-messbill/internal/report"
	reporterrors "go-messbill/internal/report/errors"
	"go-messbill/internal/shared/apperror"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct {
	EmployeeReportFn       func(ctx context.Context, req report.ReportRequest) (report.EmployeeReportResponse, error)
	CategoryReportFn       func(ctx context.Context, req report.ReportRequest) (report.CategoryReportResponse, error)
	ExportEmployeeReportFn func(ctx context.Context, req report.ReportRequest) (report.Artifact, error)
	ExportCategoryReportFn func(ctx context.Context, req report.ReportRequest) (report.Artifact, error)
}

func (f *fakeReportService) EmployeeReport(ctx context.Context, req report.ReportRequest) (report.EmployeeReportResponse, error) {
	return f.EmployeeReportFn(ctx, req)
}
func (f *fakeReportService) CategoryReport(ctx context.Context, req report.ReportRequest) (report.CategoryReportResponse, error) {
	return f.CategoryReportFn(ctx, req)
}
func (f *fakeReportService) ExportEmployeeReport(ctx context.Context, req report.ReportRequest) (report.Artifact, error) {
	return f.ExportEmployeeReportFn(ctx, req)
}
func (f *fakeReportService) ExportCategoryReport(ctx context.Context, req report.ReportRequest) (report.Artifact, error) {
	return f.ExportCategoryReportFn(ctx, req)
}

func setupRouter(svc report.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	report.RegisterRoutes(r, report.NewHandler(svc))
	return r
}

func TestReportHandler_EmployeeReport(t *testing.T) {
	var got report.ReportRequest
	svc := &fakeReportService{
		EmployeeReportFn: func(_ context.Context, req report.ReportRequest) (report.EmployeeReportResponse, error) {
			got = req
			return report.EmployeeReportResponse{Rows: []report.EmployeeTotal{{EmpCode: "E1", TotalAmount: 260}}}, nil
		},
	}
	r := setupRouter(svc)

	t.Run("binds query", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/meals?year=2024&month=1&sort=empName&dir=desc", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, report.ReportRequest{Year: 2024, Month: 1, Sort: "empName", Dir: "desc"}, got)

		var body struct {
			Ok   bool                          `json:"ok"`
			Data report.EmployeeReportResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, 260.0, body.Data.Rows[0].TotalAmount)
	})

	t.Run("rejects bad month", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/meals?month=13", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad date", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/meals?date=2024-1-5", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_CategoryReport(t *testing.T) {
	svc := &fakeReportService{
		CategoryReportFn: func(context.Context, report.ReportRequest) (report.CategoryReportResponse, error) {
			return report.CategoryReportResponse{Categories: []report.CategoryRow{}, Empty: true}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["data"].(map[string]any)["empty"])
}

func TestReportHandler_Export(t *testing.T) {
	svc := &fakeReportService{
		ExportEmployeeReportFn: func(_ context.Context, req report.ReportRequest) (report.Artifact, error) {
			return report.Artifact{
				Filename:    "Monthly_Meals_Report_1_2024.pdf",
				ContentType: "application/pdf",
				Body:        []byte("%PDF-1.3"),
			}, nil
		},
		ExportCategoryReportFn: func(context.Context, report.ReportRequest) (report.Artifact, error) {
			return report.Artifact{}, reporterrors.ErrUnsupportedFormat
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/meals/export?format=pdf&year=2024&month=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Monthly_Meals_Report_1_2024.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/meals/export?format=csv", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/categories/export", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
