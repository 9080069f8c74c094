package meal

import (
	"go-messbill/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts meal records under /attendance, the path existing
// clients already call.
func RegisterRoutes(r gin.IRouter, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	meals := r.Group("/attendance")
	{
		meals.GET("", handler.Get)
		meals.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		if redisClient != nil {
			meals.POST("/batch", middleware.Idempotency(redisClient), handler.CreateBatch)
		} else {
			meals.POST("/batch", handler.CreateBatch)
		}
		meals.PUT("", middleware.RateLimitByIP(2, 5), handler.Update)
		meals.DELETE("", middleware.RateLimitByIP(1, 2), handler.Delete)
	}
}
