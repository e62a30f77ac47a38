package middleware

import (
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger propagates the request id and the acting user (forwarded by
// the gateway after Keycloak authentication) into the request context,
// together with a request-scoped logger.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)
		c.Set("request_id", rid)

		user := c.GetHeader("X-User")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user", user),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		if user != "" {
			ctx = contextutil.WithUserInSession(ctx, user)
		}
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
