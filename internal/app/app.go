package app

import (
	"context"

	"go-messbill/internal/config"
	"go-messbill/internal/middleware"
	"go-messbill/internal/shared/apperror"
	"go-messbill/internal/shared/connection"
	"go-messbill/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NewRouter returns a gin engine with the shared middleware chain and the
// JSON fallbacks for unmatched paths and methods. Both fallbacks answer 404.
func NewRouter(cfg config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.CORS(),
		middleware.Recovery(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
	)

	r.NoRoute(fallback(apperror.ErrRouteNotFound))
	r.NoMethod(fallback(apperror.ErrMethodNotAllowed))

	return r
}

func fallback(err error) gin.HandlerFunc {
	httpErr := apperror.ToHTTP(err)
	return func(c *gin.Context) {
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	}
}

// BuildApp connects the backing stores and mounts every module on router.
// The returned cleanup closes what was opened.
func BuildApp(ctx context.Context, cfg config.Config, router *gin.Engine, logger *zap.Logger) (func(), error) {
	// 1. Setup Infrastructure
	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	stores, err := openStores(ctx, cfg, redisClient)
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	logger.Info("stores ready", zap.String("driver", cfg.StoreDriver), zap.Bool("outbox", stores.Outbox != nil))

	// 2. Register Modules & Routes
	registerModules(router, stores, redisClient, cfg.Report, logger)

	return func() {
		stores.Close()
		_ = redisClient.Close()
	}, nil
}
