package employee_test

import (
	"context"
	"encoding/json"
	"go-messbill/internal/employee"
	employeeerrors "go-messbill/internal/employee/errors"
	"go-messbill/internal/shared/apperror"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn         func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn         func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByCodeFn      func(ctx context.Context, empCode string) (employee.EmployeeResponse, error)
	GetOptionsFn     func(ctx context.Context, department string) ([]employee.EmployeeOptionResponse, error)
	GetDepartmentsFn func(ctx context.Context) ([]string, error)
	UpdateFn         func(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn         func(ctx context.Context, empCode string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByCode(ctx context.Context, empCode string) (employee.EmployeeResponse, error) {
	return f.GetByCodeFn(ctx, empCode)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context, department string) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx, department)
}
func (f *fakeEmployeeService) GetDepartments(ctx context.Context) ([]string, error) {
	return f.GetDepartmentsFn(ctx)
}
func (f *fakeEmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, empCode string) error {
	return f.DeleteFn(ctx, empCode)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	employee.RegisterRoutes(r, employee.NewHandler(svc))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "SERVICE ENGINEER", req.Category)
				require.NotNil(t, req.LunchRate)
				assert.Equal(t, 80.0, *req.LunchRate)
				return employee.EmployeeResponse{EmpCode: req.EmpCode, EmpName: req.EmpName}, nil
			},
		}
		r := setupRouter(svc)

		body := `{"empCode":"E001","empName":"Asha","category":"SERVICE ENGINEER","department":"Production","lunchRate":80}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Employee created successfully", decode(t, w)["message"])
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		r := setupRouter(&fakeEmployeeService{})

		body := `{"empCode":"E001","empName":"Asha","category":"VISITOR","department":"Production"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Category is invalid", decode(t, w)["message"])
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		r := setupRouter(&fakeEmployeeService{})

		body := `{"empCode":"E001","empName":"Asha","category":"GUEST","department":"Production","dinnerRate":-5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate answers 200 with message", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}
		r := setupRouter(svc)

		body := `{"empCode":"E001","empName":"Asha","category":"GUEST","department":"Production"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode(t, w)
		assert.Equal(t, false, got["ok"])
		assert.Equal(t, "Employee with this empCode already exists", got["message"])
	})
}

func TestEmployeeHandler_Get(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{EmpCode: "E001"}, {EmpCode: "E002"}}, nil
		},
		GetByCodeFn: func(_ context.Context, empCode string) (employee.EmployeeResponse, error) {
			if empCode == "E001" {
				return employee.EmployeeResponse{EmpCode: "E001"}, nil
			}
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	r := setupRouter(svc)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantMsg    string
	}{
		{name: "list", url: "/employee", wantStatus: http.StatusOK},
		{name: "single", url: "/employee?empCode=E001", wantStatus: http.StatusOK},
		{name: "missing", url: "/employee?empCode=E999", wantStatus: http.StatusNotFound, wantMsg: "Employee not found."},
		{name: "foreign parameter", url: "/employee?name=Asha", wantStatus: http.StatusBadRequest, wantMsg: "Invalid query parameter. Only 'empCode' is allowed."},
		{name: "extra parameter", url: "/employee?empCode=E001&x=1", wantStatus: http.StatusBadRequest, wantMsg: "Invalid query parameter. Only 'empCode' is allowed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode(t, w)["message"])
			}
		})
	}
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(_ context.Context, department string) ([]employee.EmployeeOptionResponse, error) {
			assert.Equal(t, "Production", department)
			return []employee.EmployeeOptionResponse{{EmpCode: "E002", Department: "Production"}}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee/options?department=Production", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"empCode":"E002"`)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(_ context.Context, empCode string) error {
				assert.Equal(t, "E001", empCode)
				return nil
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employee?empCode=E001", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Employee deleted successfully", decode(t, w)["message"])
	})

	t.Run("missing empCode", func(t *testing.T) {
		r := setupRouter(&fakeEmployeeService{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employee", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
