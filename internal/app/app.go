package app

import (
	"go-salaryslip/internal/config"
	"go-salaryslip/internal/salaryslip"
	"go-salaryslip/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers the API routes. The
// returned cleanup releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := gormDB.AutoMigrate(&salaryslip.SalarySlip{}); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("salary_slips table migrated")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	} else {
		logger.Info("REDIS_ADDR not set, idempotent create disabled")
	}

	registerModules(router, gormDB, redisClient, cfg)

	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
