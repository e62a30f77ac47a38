package app

import (
	"os"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/connection"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and registers every module's routes on
// the router. All configuration comes from the environment.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	minioClient, err := connection.ConnectMinioWithRetry(
		os.Getenv("MINIO_ENDPOINT"),
		os.Getenv("MINIO_ACCESS_KEY"),
		os.Getenv("MINIO_SECRET_KEY"),
		os.Getenv("MINIO_USE_SSL") == "true",
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("object store connection established")

	bucket := storage.NewMinioBucket(
		minioClient,
		os.Getenv("MINIO_BUCKET"),
		os.Getenv("MINIO_BASE_URL"),
	)

	return registerModules(router, sqlDB, gormDB, rdb, bucket)
}
