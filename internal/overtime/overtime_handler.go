package overtime

import (
	"net/http"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/shared/apperror"
	"go-timesheet/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// WeekAlert returns the policy alert for the requested week. There are
// no ownership or validation query params here on purpose: display
// filters must not influence the alert.
func (h *Handler) WeekAlert(c *gin.Context) {
	actor := authz.Actor{
		UserID:       c.GetString("user_id"),
		TenantID:     c.GetString("tenant_id"),
		TechnicianID: c.GetInt64("technician_id"),
		Role:         c.GetString("role"),
	}

	resp, err := h.service.WeekAlert(c.Request.Context(), actor, c.Query("week"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
