package app

import (
	"go-salaryslip/internal/config"
	"go-salaryslip/internal/middleware"
	"go-salaryslip/internal/salaryslip"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter returns an engine with the middleware every binary shares.
func NewRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
	)
	return r
}

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) {
	// --- Repositories ---
	salarySlipRepo := salaryslip.NewRepository(gormDB)

	// --- Services ---
	salarySlipService := salaryslip.NewService(salarySlipRepo)

	// --- Handlers ---
	var salarySlipHandler *salaryslip.Handler
	if rdb != nil {
		salarySlipHandler = salaryslip.NewHandlerWithRedis(salarySlipService, rdb)
	} else {
		salarySlipHandler = salaryslip.NewHandler(salarySlipService)
	}

	// --- Routes Registration ---
	router.Use(middleware.AllowAllOrigins())
	api := router.Group("/api")
	{
		salaryslip.RegisterRoutes(api, salarySlipHandler, cfg.RateLimit, rdb)
	}
}
