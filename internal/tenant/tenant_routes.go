package tenant

import (
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	settings := r.Group("/tenant/settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", middleware.RoleMiddleware("SUPER_ADMIN", "ADMIN"), h.UpdateSettings)
	}
}
