package salaryslip

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	salarysliperrors "go-salaryslip/internal/salaryslip/errors"
	"go-salaryslip/internal/shared/apperror"
	"go-salaryslip/internal/shared/contextutil"
	"go-salaryslip/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, logger: zap.L().Named("salaryslip.handler")}
}

// NewHandlerWithRedis enables replay of idempotent creates.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	h := NewHandler(service)
	h.rdb = rdb
	return h
}

// writeServiceError reports err with its own status when it is an
// *apperror.AppError, and with fallbackStatus otherwise.
func (h *Handler) writeServiceError(c *gin.Context, err error, fallbackStatus int) {
	httpErr := apperror.ToHTTP(err, fallbackStatus)

	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	if httpErr.Status >= http.StatusInternalServerError {
		log.Error("salary slip request failed", zap.String("code", httpErr.Code), zap.Error(err))
	} else {
		log.Warn("salary slip request rejected", zap.String("code", httpErr.Code), zap.Error(err))
	}

	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, http.StatusInternalServerError)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	lockKey := c.GetString("idempotency_lock_key")
	cacheKey := c.GetString("idempotency_cache_key")

	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(ctx, lockKey)
	}

	var req CreateSalarySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(ctx, req)
	if err != nil {
		h.writeServiceError(c, err, http.StatusBadRequest)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			if setErr := h.rdb.Set(ctx, cacheKey, payload, idempotencyTTL).Err(); setErr != nil {
				contextutil.GetLogger(ctx, h.logger).Warn("store idempotent response failed", zap.Error(setErr))
			}
		}
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update answers 200 with a JSON null body when no slip has the id. A
// missing body is an update of no fields.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateSalarySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeServiceError(c, apperror.MapValidationError(err), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err, http.StatusBadRequest)
		return
	}

	if resp == nil {
		response.Success(c, http.StatusOK, nil)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err, http.StatusInternalServerError)
		return
	}

	response.Message(c, http.StatusOK, salarysliperrors.DeletedMessage)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	id := c.Param("id")

	pdf, err := h.service.RenderPayslip(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `inline; filename="salary-slip-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
