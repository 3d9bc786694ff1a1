package app

import (
	"go-salaryslip/internal/config"
	"go-salaryslip/internal/console"
	"go-salaryslip/internal/slipclient"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildWeb registers the console pages backed by the API at cfg.APIBaseURL.
func BuildWeb(router *gin.Engine, cfg *config.Config) {
	zap.L().Named("app").Info("console wired", zap.String("api_base_url", cfg.APIBaseURL))

	client := slipclient.NewClient(cfg.APIBaseURL, cfg.HTTPClientTimeout)
	console.RegisterRoutes(router, console.NewHandler(client))
}
