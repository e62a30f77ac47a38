package employee

import (
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employees := r.Group("/employee")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("/list/pageable",
			middleware.RateLimitByIP(3, 10),
			handler.ListPageable,
		)

		employees.GET("/findById/:employeeId",
			middleware.RateLimitByIP(3, 10),
			handler.FindByID,
		)

		employees.GET("/findByEmail",
			middleware.RateLimitByIP(3, 10),
			handler.FindByEmail,
		)

		employees.POST("/save",
			middleware.RateLimitByIP(0.5, 2),
			handler.Save,
		)

		employees.PUT("/update/:employeeId",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		employees.DELETE("/delete/:employeeId",
			middleware.RateLimitByIP(0.1, 1),
			handler.Delete,
		)
	}
}
