package middleware

import (
	"fmt"
	"go-messbill/internal/shared/apperror"
	"go-messbill/internal/shared/contextutil"
	"go-messbill/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 carrying the panic message.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := fmt.Sprint(recovered)
		contextutil.GetLogger(c.Request.Context(), zap.L()).Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", msg),
			zap.Stack("stack"),
		)
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, msg, nil)
		c.Abort()
	})
}
