package timesheet

import (
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.GET("", h.ListWeek)
		timesheets.POST("", middleware.Idempotency(rdb), h.Create)
	}
}
