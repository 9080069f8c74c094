package salary

import (
	"go-messbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	salaries := r.Group("/salary")
	{
		salaries.GET("", handler.Get)
		salaries.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		salaries.PUT("", middleware.RateLimitByIP(2, 5), handler.Update)
		salaries.DELETE("", middleware.RateLimitByIP(1, 2), handler.Delete)
	}
}
