package app

import (
	"go-messbill/internal/config"
	"go-messbill/internal/deduction"
	"go-messbill/internal/employee"
	"go-messbill/internal/meal"
	"go-messbill/internal/report"
	"go-messbill/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router gin.IRouter,
	stores Stores,
	rdb *redis.Client,
	reportCfg config.ReportConfig,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(stores.Employees)
	salaryRepo := salary.NewRepository(stores.Salaries)
	mealRepo := meal.NewRepository(stores.Meals)
	deductionRepo := deduction.NewRepository(stores.Deductions)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(employeeRepo, stores.Outbox, rdb, logger)
	salaryService := salary.NewService(salaryRepo)
	mealService := meal.NewService(mealRepo, employeeRepo, stores.Counter, logger)
	deductionService := deduction.NewService(deductionRepo, stores.Counter, logger)
	reportService := report.NewService(employeeRepo, mealRepo, report.Options{
		CompanyName:    reportCfg.CompanyName,
		CurrencySymbol: reportCfg.CurrencySymbol,
		Locale:         reportCfg.Locale,
	}, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	mealHandler := meal.NewHandler(mealService, rdb, logger)
	deductionHandler := deduction.NewHandler(deductionService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes Registration ---
	employee.RegisterRoutes(router, employeeHandler)
	salary.RegisterRoutes(router, salaryHandler)
	meal.RegisterRoutes(router, mealHandler, rdb)
	deduction.RegisterRoutes(router, deductionHandler)
	report.RegisterRoutes(router, reportHandler)
}
