package report

import (
	"go-messbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("/meals", handler.EmployeeReport)
		reports.GET("/meals/export", middleware.RateLimitByIP(1, 5), handler.ExportEmployeeReport)
		reports.GET("/categories", handler.CategoryReport)
		reports.GET("/categories/export", middleware.RateLimitByIP(1, 5), handler.ExportCategoryReport)
	}
}
