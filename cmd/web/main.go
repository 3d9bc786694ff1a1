package main

import (
	"time"

	"go-salaryslip/internal/app"
	"go-salaryslip/internal/bootstrap"
	"go-salaryslip/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := app.NewRouter(logger)
	app.BuildWeb(r, cfg)

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Name:            "web",
			Port:            cfg.WebPort,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    cfg.HTTPClientTimeout + 5*time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		bootstrap.NewStdoutAuditLogger(),
	)
}
