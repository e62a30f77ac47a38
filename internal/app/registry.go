package app

import (
	"database/sql"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/messaging/kafka"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/storage"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	bucket storage.Bucket,
) error {
	logger := zap.L()

	// --- Repositories ---
	lookupRepo := lookup.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	lookupService := lookup.NewService(lookupRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, lookupService, bucket, outboxRepo)
	userService := user.NewService(userRepo)

	// --- Handlers ---
	lookupHandler := lookup.NewHandler(lookupService)
	employeeHandler := employee.NewHandler(employeeService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/v1/user-service")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		user.RegisterRoutes(api, userHandler, logger)
		lookup.RegisterRoutes(api, lookupHandler)
	}

	return nil
}
