package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/repository"
)

var (
	ErrGoalNotFound     = errors.New("goal not found in current period")
	ErrGoalNotSkippable = errors.New("only recurring goals can be skipped")
)

// TrackerService owns completion state for the current period's goals.
// Every operation runs the lazy rollover check first, mutates a single
// instance, recomputes the cached stats, and saves the whole period
// document (last write wins).
type TrackerService struct {
	weeks    repository.WeekRepository
	archiver *ArchiverService
	scores   *ScoreService
	now      func() time.Time
}

func NewTrackerService(
	weeks repository.WeekRepository,
	archiver *ArchiverService,
	scores *ScoreService,
	now func() time.Time,
) *TrackerService {
	return &TrackerService{
		weeks:    weeks,
		archiver: archiver,
		scores:   scores,
		now:      now,
	}
}

// Current returns the live period document, rolling over first if needed.
func (s *TrackerService) Current(userID, kind string) (*model.Week, error) {
	return s.archiver.EnsureCurrent(userID, kind)
}

// Toggle records one completion. Frequency-1 goals flip between done and
// not done; higher-frequency goals count up to their cap and flip to
// completed exactly when the counter reaches the frequency. Points are
// awarded only on the transition into completed, so a retried toggle on an
// already-full goal awards nothing.
func (s *TrackerService) Toggle(userID, kind, goalID string) (*model.Week, error) {
	week, err := s.archiver.EnsureCurrent(userID, kind)
	if err != nil {
		return nil, err
	}

	goal := week.Instance(goalID)
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	wasCompleted := goal.Completed
	now := s.now().UTC()

	frequency := goal.Frequency
	if frequency < 1 {
		frequency = 1
	}

	if frequency == 1 {
		if goal.Completed {
			goal.Completed = false
			goal.CompletionCount = 0
			goal.CompletedAt = nil
		} else {
			goal.Completed = true
			goal.CompletionCount = 1
			goal.CompletedAt = &now
		}
	} else if goal.CompletionCount < frequency {
		goal.CompletionCount++
		if goal.CompletionCount == frequency {
			goal.Completed = true
			goal.CompletedAt = &now
		}
	}

	week.RecomputeStats()

	err = s.weeks.Save(kind, week)
	if err != nil {
		return nil, err
	}

	if !wasCompleted && goal.Completed {
		_, err = s.scores.RecordGoalCompleted(userID, goal)
		if err != nil {
			// The completion itself committed; a failed award is logged,
			// not surfaced as a toggle failure.
			slog.Error("failed to record goal completion points",
				"error", err, "user_id", userID, "goal_id", goal.ID)
		}
	}

	return week, nil
}

// Decrement undoes one completion. Decrementing at zero is a no-op, not an
// error.
func (s *TrackerService) Decrement(userID, kind, goalID string) (*model.Week, error) {
	week, err := s.archiver.EnsureCurrent(userID, kind)
	if err != nil {
		return nil, err
	}

	goal := week.Instance(goalID)
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	if goal.CompletionCount == 0 {
		return week, nil
	}

	goal.CompletionCount--
	if goal.CompletionCount < goal.Frequency {
		goal.Completed = false
		goal.CompletedAt = nil
	}

	week.RecomputeStats()

	err = s.weeks.Save(kind, week)
	if err != nil {
		return nil, err
	}

	return week, nil
}

// Skip opts a recurring goal out of the current period without counting
// against the streak. Standalone deadline goals cannot be skipped. A
// skipped goal stays in the period total; if it is completed later anyway
// it counts as completed.
func (s *TrackerService) Skip(userID, kind, goalID string) (*model.Week, error) {
	week, err := s.archiver.EnsureCurrent(userID, kind)
	if err != nil {
		return nil, err
	}

	goal := week.Instance(goalID)
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	if !goal.Recurring() {
		return nil, ErrGoalNotSkippable
	}

	goal.Skipped = true
	week.RecomputeStats()

	err = s.weeks.Save(kind, week)
	if err != nil {
		return nil, err
	}

	return week, nil
}
