package timesheet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/timesheet"
	timesheeterrors "go-timesheet/internal/timesheet/errors"
	timesheetMock "go-timesheet/internal/timesheet/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func injectActor(c *gin.Context, actor authz.Actor) {
	c.Set("user_id", actor.UserID)
	c.Set("tenant_id", actor.TenantID)
	c.Set("technician_id", actor.TechnicianID)
	c.Set("role", actor.Role)
}

func TestTimesheetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := authz.Actor{
		UserID:       uuid.New().String(),
		TenantID:     uuid.New().String(),
		TechnicianID: 7,
		Role:         "TECHNICIAN",
	}

	t.Run("success", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ authz.Actor, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
				assert.Equal(t, int64(7), req.TechnicianID)
				assert.Equal(t, "7.5", req.HoursWorked)
				return timesheet.TimesheetResponse{ID: 42, TechnicianID: 7, WorkDate: req.WorkDate, HoursWorked: req.HoursWorked}, nil
			})

		h := timesheet.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"technician_id":7,"work_date":"2026-03-09","hours_worked":"7.5"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/timesheets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		injectActor(c, actor)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)

		var record timesheet.TimesheetResponse
		assert.NoError(t, json.Unmarshal(resp.Data, &record))
		assert.Equal(t, int64(42), record.ID)
	})

	t.Run("malformed body is rejected before the service", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)

		h := timesheet.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/timesheets", strings.NewReader(`{"technician_id":`))
		c.Request.Header.Set("Content-Type", "application/json")
		injectActor(c, actor)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error maps to its http status", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), actor, gomock.Any()).
			Return(timesheet.TimesheetResponse{}, timesheeterrors.ErrLogForOthersForbidden)

		h := timesheet.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"technician_id":99,"work_date":"2026-03-09","hours_worked":"8"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/timesheets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		injectActor(c, actor)

		h.Create(c)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Ok)
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	})
}

func TestTimesheetHandler_ListWeek(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := authz.Actor{TenantID: uuid.New().String(), TechnicianID: 7, Role: "TECHNICIAN"}

	t.Run("passes query filters through with defaults", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			ListWeek(gomock.Any(), actor, timesheet.ListWeekQuery{
				WeekAnchor: "2026-03-09",
				Ownership:  "mine",
				Validation: "all",
				Page:       1,
				Limit:      20,
			}).
			Return(timesheet.ListWeekResult{WeekAnchor: "2026-03-08", VisibleCount: 3}, nil)

		h := timesheet.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/timesheets?week=2026-03-09&ownership=mine", nil)
		injectActor(c, actor)

		h.ListWeek(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		var result timesheet.ListWeekResult
		assert.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, "2026-03-08", result.WeekAnchor)
		assert.Equal(t, 3, result.VisibleCount)
	})

	t.Run("invalid week anchor maps to bad request", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			ListWeek(gomock.Any(), actor, gomock.Any()).
			Return(timesheet.ListWeekResult{}, timesheeterrors.ErrInvalidWeekAnchor)

		h := timesheet.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/timesheets?week=bogus", nil)
		injectActor(c, actor)

		h.ListWeek(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
