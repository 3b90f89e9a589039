package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/repository"
	"github.com/dreamtrackhq/dreamtrack/internal/validation"
)

// EventRefs carries the optional foreign keys a ledger entry can point at.
type EventRefs struct {
	DreamID   string
	WeekID    string
	ConnectID string
}

// ScoreService maintains the append-only score ledger. The total is always
// the sum of entry points; it is never stored as a writable field.
type ScoreService struct {
	repo repository.ScoreRepository
	now  func() time.Time
}

func NewScoreService(repo repository.ScoreRepository, now func() time.Time) *ScoreService {
	return &ScoreService{repo: repo, now: now}
}

// RecordEvent validates and appends one ledger entry.
func (s *ScoreService) RecordEvent(userID, source string, points int, activity string, refs EventRefs) (*model.ScoreEntry, error) {
	err := validation.ValidateScoreEvent(source, points, activity)
	if err != nil {
		return nil, err
	}

	entry := &model.ScoreEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      s.now().UTC(),
		Source:    source,
		Points:    points,
		Activity:  activity,
		DreamID:   refs.DreamID,
		WeekID:    refs.WeekID,
		ConnectID: refs.ConnectID,
	}

	err = s.repo.Append(entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordGoalCompleted awards the standard points for finishing a goal.
// Callers invoke this only on the transition into completed.
func (s *ScoreService) RecordGoalCompleted(userID string, goal *model.GoalInstance) (*model.ScoreEntry, error) {
	return s.RecordEvent(userID, model.ScoreSourceWeek, model.PointsGoalCompleted,
		"Completed goal: "+goal.Title,
		EventRefs{DreamID: goal.DreamID, WeekID: goal.WeekID})
}

// Entries returns the user's ledger, oldest first.
func (s *ScoreService) Entries(userID string) ([]*model.ScoreEntry, error) {
	return s.repo.Entries(userID)
}

// Total sums the user's ledger.
func (s *ScoreService) Total(userID string) (int, error) {
	entries, err := s.repo.Entries(userID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, entry := range entries {
		total += entry.Points
	}

	return total, nil
}
