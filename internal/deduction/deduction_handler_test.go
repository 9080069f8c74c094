package deduction_test

import (
	"context"
	"encoding/json"
	"go-messbill/internal/deduction"
	deductionerrors "go-messbill/internal/deduction/errors"
	"go-messbill/internal/shared/apperror"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeductionService struct {
	CreateFn     func(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error)
	GetAllFn     func(ctx context.Context) ([]deduction.DeductionResponse, error)
	GetByTxnNoFn func(ctx context.Context, txnNo string) (deduction.DeductionResponse, error)
	UpdateFn     func(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error)
	DeleteFn     func(ctx context.Context, txnNo string) error
}

func (f *fakeDeductionService) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDeductionService) GetAll(ctx context.Context) ([]deduction.DeductionResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDeductionService) GetByTxnNo(ctx context.Context, txnNo string) (deduction.DeductionResponse, error) {
	return f.GetByTxnNoFn(ctx, txnNo)
}
func (f *fakeDeductionService) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	return f.UpdateFn(ctx, req)
}
func (f *fakeDeductionService) Delete(ctx context.Context, txnNo string) error {
	return f.DeleteFn(ctx, txnNo)
}

func setupRouter(svc deduction.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	deduction.RegisterRoutes(r, deduction.NewHandler(svc))
	return r
}

func TestDeductionHandler(t *testing.T) {
	svc := &fakeDeductionService{
		CreateFn: func(_ context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
			return deduction.DeductionResponse{TxnNo: "TXN-000001", EmpCode: req.EmpCode}, nil
		},
		GetByTxnNoFn: func(context.Context, string) (deduction.DeductionResponse, error) {
			return deduction.DeductionResponse{}, deductionerrors.ErrDeductionNotFound
		},
		UpdateFn: func(context.Context, deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
			return deduction.DeductionResponse{}, deductionerrors.ErrDeductionNotFound
		},
	}
	r := setupRouter(svc)

	t.Run("create", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/deduction", strings.NewReader(`{"date":"2024-01-31","empCode":"E1","mess":100}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Deduction record created successfully", body["message"])
	})

	t.Run("create without date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/deduction", strings.NewReader(`{"empCode":"E1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deduction?txnno=T9", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/deduction", strings.NewReader(`{"txnno":"T9","date":"2024-01-31","empCode":"E1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
