package timesheet

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/shared/apperror"
	"go-timesheet/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func actorFromContext(c *gin.Context) authz.Actor {
	return authz.Actor{
		UserID:       c.GetString("user_id"),
		TenantID:     c.GetString("tenant_id"),
		TechnicianID: c.GetInt64("technician_id"),
		Role:         c.GetString("role"),
	}
}

func (h *Handler) Create(c *gin.Context) {
	actor := actorFromContext(c)

	var req CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.finishIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListWeek(c *gin.Context) {
	actor := actorFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := ListWeekQuery{
		WeekAnchor: c.Query("week"),
		Ownership:  c.DefaultQuery("ownership", "all"),
		Validation: c.DefaultQuery("validation", "all"),
		Page:       page,
		Limit:      limit,
	}

	resp, err := h.service.ListWeek(c.Request.Context(), actor, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.Total, resp.Page, resp.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

// finishIdempotency stores the successful response and releases the lock
// set by the idempotency middleware.
func (h *Handler) finishIdempotency(c *gin.Context, resp TimesheetResponse) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}
