package user

import (
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	users := r.Group("/user")
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("/list",
			middleware.RateLimitByIP(3, 10),
			handler.List,
		)

		users.GET("/findById/:userId",
			middleware.RateLimitByIP(3, 10),
			handler.FindByID,
		)

		users.GET("/findByUsername/:username",
			middleware.RateLimitByIP(3, 10),
			handler.FindByUsername,
		)

		users.GET("/exists/:keycloakId",
			middleware.RateLimitByIP(3, 10),
			handler.ExistsByKeycloakID,
		)

		users.POST("/save",
			middleware.RateLimitByIP(0.5, 2),
			handler.Save,
		)

		users.PUT("/update/:userId",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		users.DELETE("/delete/:userId",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)
	}
}
