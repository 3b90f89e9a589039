package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

func TestWeekID(t *testing.T) {
	// 2025-01-02 is a Thursday in ISO week 1 of 2025
	assert.Equal(t, "2025-W01", model.WeekID(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)))
	// 2024-12-30 is the Monday that starts 2025-W01
	assert.Equal(t, "2025-W01", model.WeekID(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-W43", model.WeekID(time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)))
}

func TestMonthID(t *testing.T) {
	assert.Equal(t, "2025-10", model.MonthID(time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01", model.MonthID(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestWeekStart(t *testing.T) {
	start, err := model.WeekStart("2025-W01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), start)

	start, err = model.WeekStart("2025-W43")
	require.NoError(t, err)
	assert.Equal(t, time.Weekday(time.Monday), start.Weekday())
	assert.Equal(t, "2025-W43", model.WeekID(start))

	_, err = model.WeekStart("garbage")
	assert.Error(t, err)

	_, err = model.WeekStart("2025-W99")
	assert.Error(t, err)
}

func TestPeriodsBetween(t *testing.T) {
	n, err := model.PeriodsBetween("2025-W01", "2025-W01")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = model.PeriodsBetween("2025-W01", "2025-W12")
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	n, err = model.PeriodsBetween("2025-W12", "2025-W01")
	require.NoError(t, err)
	assert.Equal(t, -11, n)

	// Across a year boundary
	n, err = model.PeriodsBetween("2024-W52", "2025-W01")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = model.PeriodsBetween("2024-11", "2025-02")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = model.PeriodsBetween("2025-W01", "2025-01")
	assert.Error(t, err)
}

func TestPeriodBounds(t *testing.T) {
	start, end, err := model.PeriodBounds("2025-W01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), end)

	start, end, err = model.PeriodBounds("2025-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriodScore(t *testing.T) {
	assert.Equal(t, 0, model.PeriodScore(0, 0))
	assert.Equal(t, 60, model.PeriodScore(3, 5))
	assert.Equal(t, 100, model.PeriodScore(4, 4))
	assert.Equal(t, 33, model.PeriodScore(1, 3))
	assert.Equal(t, 67, model.PeriodScore(2, 3))
}

func TestRecomputeStats(t *testing.T) {
	week := &model.Week{
		UserID:   "u1",
		PeriodID: "2025-W01",
		Instances: []*model.GoalInstance{
			{ID: "a", Completed: true},
			{ID: "b", Completed: true},
			{ID: "c", Completed: true},
			{ID: "d"},
			{ID: "e"},
		},
	}

	week.RecomputeStats()

	assert.Equal(t, 5, week.TotalGoals)
	assert.Equal(t, 3, week.CompletedGoals)
	assert.Equal(t, 60, week.Score)
}
