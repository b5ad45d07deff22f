package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-timesheet/internal/policy"
)

// Client fetches the payroll service's weekly summary for one displayed
// week. The summary is authoritative for whether a double-time violation
// exists; this service never recomputes it locally.
//go:generate mockgen -source=summary_client.go -destination=mock/summary_client_mock.go -package=mock
type Client interface {
	WeekSummary(ctx context.Context, tenantID, weekAnchor string) (policy.WeeklySummary, error)
}

type weeklySummaryPayload struct {
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	OvertimeRate    float64 `json:"overtime_rate"`
	OvertimeHours2x float64 `json:"overtime_hours_2x"`
	WorkweekStart   string  `json:"workweek_start"`
	PolicyKey       string  `json:"policy_key"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) WeekSummary(ctx context.Context, tenantID, weekAnchor string) (policy.WeeklySummary, error) {
	url := fmt.Sprintf("%s/v1/tenants/%s/weekly-summary?week=%s", c.baseURL, tenantID, weekAnchor)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return policy.WeeklySummary{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return policy.WeeklySummary{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return policy.WeeklySummary{}, fmt.Errorf("payroll service returned status %d", res.StatusCode)
	}

	var payload weeklySummaryPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return policy.WeeklySummary{}, fmt.Errorf("decode weekly summary: %w", err)
	}

	return policy.WeeklySummary{
		RegularHours:    payload.RegularHours,
		OvertimeHours:   payload.OvertimeHours,
		OvertimeRate:    payload.OvertimeRate,
		OvertimeHours2x: payload.OvertimeHours2x,
		WorkweekStart:   payload.WorkweekStart,
		PolicyKey:       payload.PolicyKey,
	}, nil
}
