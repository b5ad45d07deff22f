package summary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-timesheet/internal/summary"

	"github.com/stretchr/testify/assert"
)

func TestHTTPClient_WeekSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the payroll payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/tenants/t-1/weekly-summary", r.URL.Path)
			assert.Equal(t, "2026-03-08", r.URL.Query().Get("week"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"regular_hours": 40,
				"overtime_hours": 6,
				"overtime_rate": 1.5,
				"overtime_hours_2x": 1.5,
				"workweek_start": "sunday",
				"policy_key": "ca_daily_double_time"
			}`))
		}))
		defer server.Close()

		client := summary.NewHTTPClient(server.URL, 2*time.Second)

		got, err := client.WeekSummary(ctx, "t-1", "2026-03-08")

		assert.NoError(t, err)
		assert.InDelta(t, 40, got.RegularHours, 1e-9)
		assert.InDelta(t, 1.5, got.OvertimeHours2x, 1e-9)
		assert.Equal(t, "ca_daily_double_time", got.PolicyKey)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := summary.NewHTTPClient(server.URL, 2*time.Second)

		_, err := client.WeekSummary(ctx, "t-1", "2026-03-08")
		assert.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"regular_hours": `))
		}))
		defer server.Close()

		client := summary.NewHTTPClient(server.URL, 2*time.Second)

		_, err := client.WeekSummary(ctx, "t-1", "2026-03-08")
		assert.Error(t, err)
	})

	t.Run("unreachable service is an error", func(t *testing.T) {
		client := summary.NewHTTPClient("http://127.0.0.1:1", time.Second)

		_, err := client.WeekSummary(ctx, "t-1", "2026-03-08")
		assert.Error(t, err)
	})
}
