package policy_test

import (
	"testing"
	"time"

	"go-timesheet/internal/policy"
	"go-timesheet/internal/workweek"

	"github.com/stretchr/testify/assert"
)

func weekOf(day string) workweek.Window {
	d, err := workweek.ParseDay(day)
	if err != nil {
		panic(err)
	}
	return workweek.Containing(d, time.Sunday)
}

func TestEvaluateDaily(t *testing.T) {
	window := weekOf("2026-03-08")

	t.Run("strictly over the threshold flags a candidate", func(t *testing.T) {
		totals := map[policy.DayKey]policy.DailyTotal{
			{TechnicianID: 7, Date: "2026-03-09"}: {Hours: 12.01},
		}

		candidates := policy.EvaluateDaily(totals, window, 12.0)

		assert.Len(t, candidates, 1)
		assert.Equal(t, int64(7), candidates[0].TechnicianID)
		assert.Equal(t, "2026-03-09", candidates[0].Date)
		assert.InDelta(t, 0.01, candidates[0].ExcessHours, 1e-9)
	})

	t.Run("exactly the threshold is not excess", func(t *testing.T) {
		totals := map[policy.DayKey]policy.DailyTotal{
			{TechnicianID: 7, Date: "2026-03-09"}: {Hours: 12.0},
		}

		assert.Empty(t, policy.EvaluateDaily(totals, window, 12.0))
	})

	t.Run("days outside the window are ignored", func(t *testing.T) {
		totals := map[policy.DayKey]policy.DailyTotal{
			{TechnicianID: 7, Date: "2026-03-20"}: {Hours: 15},
			{TechnicianID: 7, Date: "2026-03-09"}: {Hours: 15},
		}

		candidates := policy.EvaluateDaily(totals, window, 12.0)

		assert.Len(t, candidates, 1)
		assert.Equal(t, "2026-03-09", candidates[0].Date)
	})

	t.Run("output order is date then technician", func(t *testing.T) {
		totals := map[policy.DayKey]policy.DailyTotal{
			{TechnicianID: 9, Date: "2026-03-10"}: {Hours: 14},
			{TechnicianID: 7, Date: "2026-03-10"}: {Hours: 13},
			{TechnicianID: 8, Date: "2026-03-09"}: {Hours: 16},
		}

		candidates := policy.EvaluateDaily(totals, window, 12.0)

		assert.Len(t, candidates, 3)
		assert.Equal(t, "2026-03-09", candidates[0].Date)
		assert.Equal(t, int64(7), candidates[1].TechnicianID)
		assert.Equal(t, int64(9), candidates[2].TechnicianID)
	})

	t.Run("repeated runs are identical", func(t *testing.T) {
		totals := map[policy.DayKey]policy.DailyTotal{
			{TechnicianID: 3, Date: "2026-03-11"}: {Hours: 13},
			{TechnicianID: 1, Date: "2026-03-11"}: {Hours: 14},
			{TechnicianID: 2, Date: "2026-03-12"}: {Hours: 15},
		}

		first := policy.EvaluateDaily(totals, window, 12.0)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, policy.EvaluateDaily(totals, window, 12.0))
		}
	})

	t.Run("empty totals yield no candidates", func(t *testing.T) {
		assert.Empty(t, policy.EvaluateDaily(nil, window, 12.0))
	})
}

func TestRuleAppliesTo(t *testing.T) {
	rule := policy.CaliforniaDailyDoubleTime

	assert.True(t, rule.AppliesTo(policy.TenantContext{Region: "US", State: "CA"}))
	assert.False(t, rule.AppliesTo(policy.TenantContext{Region: "US", State: "NY"}))
	assert.False(t, rule.AppliesTo(policy.TenantContext{Region: "CA", State: "CA"}))
	assert.False(t, rule.AppliesTo(policy.TenantContext{}))
}
