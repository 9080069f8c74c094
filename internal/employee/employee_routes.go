package employee

import (
	"go-messbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	employees := r.Group("/employee")
	{
		employees.GET("", handler.Get)
		employees.GET("/options", middleware.RateLimitByIP(5, 20), handler.GetOptions)
		employees.GET("/departments", handler.GetDepartments)
		employees.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		employees.PUT("", middleware.RateLimitByIP(2, 5), handler.Update)
		employees.DELETE("", middleware.RateLimitByIP(1, 2), handler.Delete)
	}
}
