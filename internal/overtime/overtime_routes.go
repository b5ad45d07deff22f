package overtime

import (
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	overtime := r.Group("/overtime")
	overtime.Use(middleware.AuthMiddleware())
	{
		overtime.GET("/alerts", h.WeekAlert)
	}
}
