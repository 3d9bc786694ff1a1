package salaryslip

import (
	"go-salaryslip/internal/config"
	"go-salaryslip/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	limits config.RateLimitConfig,
	rdb *redis.Client,
) {
	writeLimit := middleware.RateLimitByIP(rate.Limit(limits.RPS), limits.Burst)

	slips := r.Group("/salary-slips")
	{
		slips.GET("", handler.GetAll)
		slips.GET("/:id", handler.GetById)
		slips.GET("/:id/payslip", handler.DownloadPayslip)
		if rdb != nil {
			slips.POST("", writeLimit, middleware.Idempotency(rdb), handler.Create)
		} else {
			slips.POST("", writeLimit, handler.Create)
		}
		slips.PUT("/:id", writeLimit, handler.Update)
		slips.DELETE("/:id", writeLimit, handler.Delete)
	}
}
