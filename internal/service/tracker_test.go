package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/service"
)

func seedWeeklyGoal(t *testing.T, e *env, frequency int) string {
	t.Helper()

	require.NoError(t, e.templates.Create(weeklyTemplate("u1", frequency, 12, week1Start)))

	week, err := e.tracker.Current("u1", model.PeriodWeekly)
	require.NoError(t, err)
	require.Len(t, week.Instances, 1)

	return week.Instances[0].ID
}

func TestToggleFrequencyOneFlips(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 1)

	week, err := e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)

	goal := week.Instance(goalID)
	assert.True(t, goal.Completed)
	assert.Equal(t, 1, goal.CompletionCount)
	require.NotNil(t, goal.CompletedAt)
	assert.Equal(t, 1, week.CompletedGoals)

	week, err = e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)

	goal = week.Instance(goalID)
	assert.False(t, goal.Completed)
	assert.Equal(t, 0, goal.CompletionCount)
	assert.Nil(t, goal.CompletedAt)
	assert.Equal(t, 0, week.CompletedGoals)
}

func TestToggleFrequencyThree(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 3)

	var week *model.Week
	var err error
	for i := 0; i < 3; i++ {
		week, err = e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
		require.NoError(t, err)
	}

	goal := week.Instance(goalID)
	assert.Equal(t, 3, goal.CompletionCount)
	assert.True(t, goal.Completed)
	require.NotNil(t, goal.CompletedAt)

	// Toggling past the cap changes nothing
	week, err = e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)
	goal = week.Instance(goalID)
	assert.Equal(t, 3, goal.CompletionCount)
	assert.True(t, goal.Completed)

	// One decrement drops it back below the cap
	week, err = e.tracker.Decrement("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)
	goal = week.Instance(goalID)
	assert.Equal(t, 2, goal.CompletionCount)
	assert.False(t, goal.Completed)
	assert.Nil(t, goal.CompletedAt)
}

func TestCompletionCountStaysInRange(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 2)

	for i := 0; i < 5; i++ {
		week, err := e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
		require.NoError(t, err)
		goal := week.Instance(goalID)
		assert.LessOrEqual(t, goal.CompletionCount, goal.Frequency)
		assert.Equal(t, goal.CompletionCount == goal.Frequency, goal.Completed)
	}
	for i := 0; i < 5; i++ {
		week, err := e.tracker.Decrement("u1", model.PeriodWeekly, goalID)
		require.NoError(t, err)
		goal := week.Instance(goalID)
		assert.GreaterOrEqual(t, goal.CompletionCount, 0)
		assert.Equal(t, goal.CompletionCount == goal.Frequency, goal.Completed)
	}
}

func TestDecrementAtZeroIsNoop(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 3)

	week, err := e.tracker.Decrement("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)

	goal := week.Instance(goalID)
	assert.Equal(t, 0, goal.CompletionCount)
	assert.False(t, goal.Completed)
}

func TestPointsAwardedOnlyOnTransition(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 3)

	for i := 0; i < 3; i++ {
		_, err := e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
		require.NoError(t, err)
	}
	// Retried toggle on an already-full goal awards nothing
	_, err := e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)

	entries, err := e.scoreSvc.Entries("u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ScoreSourceWeek, entries[0].Source)
	assert.Equal(t, model.PointsGoalCompleted, entries[0].Points)
	assert.Equal(t, "2025-W01", entries[0].WeekID)
	assert.Equal(t, "dream-1", entries[0].DreamID)

	total, err := e.scoreSvc.Total("u1")
	require.NoError(t, err)
	assert.Equal(t, model.PointsGoalCompleted, total)
}

func TestSkipRecurringGoal(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 1)

	week, err := e.tracker.Skip("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)

	goal := week.Instance(goalID)
	assert.True(t, goal.Skipped)
	assert.Equal(t, 0, goal.CompletionCount)
	// Skipped goals still count toward the period total
	assert.Equal(t, 1, week.TotalGoals)

	// A skipped goal completed later still counts as completed
	week, err = e.tracker.Toggle("u1", model.PeriodWeekly, goalID)
	require.NoError(t, err)
	assert.Equal(t, 1, week.CompletedGoals)
}

func TestSkipRejectsStandaloneGoal(t *testing.T) {
	e := newEnv(t)

	// A deadline goal authored without a template cannot be skipped
	week := &model.Week{
		UserID:   "u1",
		PeriodID: "2025-W01",
		Instances: []*model.GoalInstance{{
			ID:        uuid.New().String(),
			Type:      model.GoalTypeDeadline,
			Title:     "Sign up for the race",
			Frequency: 1,
			WeekID:    "2025-W01",
		}},
	}
	week.RecomputeStats()
	require.NoError(t, e.weeks.Save(model.PeriodWeekly, week))

	_, err := e.tracker.Skip("u1", model.PeriodWeekly, week.Instances[0].ID)
	assert.ErrorIs(t, err, service.ErrGoalNotSkippable)
}

func TestUnknownGoalIsNotFoundAndLeavesStateAlone(t *testing.T) {
	e := newEnv(t)
	goalID := seedWeeklyGoal(t, e, 1)

	_, err := e.tracker.Toggle("u1", model.PeriodWeekly, "missing")
	assert.ErrorIs(t, err, service.ErrGoalNotFound)

	week, err := e.tracker.Current("u1", model.PeriodWeekly)
	require.NoError(t, err)
	goal := week.Instance(goalID)
	assert.Equal(t, 0, goal.CompletionCount)
	assert.Equal(t, 0, week.CompletedGoals)
}
