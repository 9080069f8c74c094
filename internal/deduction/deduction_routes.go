package deduction

import (
	"go-messbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	deductions := r.Group("/deduction")
	{
		deductions.GET("", handler.Get)
		deductions.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		deductions.PUT("", middleware.RateLimitByIP(2, 5), handler.Update)
		deductions.DELETE("", middleware.RateLimitByIP(1, 2), handler.Delete)
	}
}
