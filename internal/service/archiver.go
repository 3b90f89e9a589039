package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/repository"
)

// ArchiverService owns period rollover. There is no background scheduler:
// the first read or write that observes a stale period id archives the old
// period and seeds the new one. The two writes commit independently; the
// store offers no cross-document transaction.
type ArchiverService struct {
	weeks     repository.WeekRepository
	summaries repository.SummaryRepository
	templates repository.TemplateRepository
	now       func() time.Time
}

func NewArchiverService(
	weeks repository.WeekRepository,
	summaries repository.SummaryRepository,
	templates repository.TemplateRepository,
	now func() time.Time,
) *ArchiverService {
	return &ArchiverService{
		weeks:     weeks,
		summaries: summaries,
		templates: templates,
		now:       now,
	}
}

// EnsureCurrent returns the user's live period document for the given kind,
// archiving a finished period and seeding the new one first if needed.
func (s *ArchiverService) EnsureCurrent(userID, kind string) (*model.Week, error) {
	currentID := model.PeriodID(kind, s.now().UTC())

	week, err := s.weeks.Current(userID, kind)
	if err == repository.ErrWeekNotFound {
		return s.seed(userID, kind, currentID)
	}
	if err != nil {
		return nil, err
	}

	if week.PeriodID == currentID {
		return week, nil
	}

	err = s.archive(week)
	if err != nil {
		return nil, fmt.Errorf("failed to archive period %s: %w", week.PeriodID, err)
	}

	return s.seed(userID, kind, currentID)
}

// History returns the user's archived period summaries, newest first.
func (s *ArchiverService) History(userID string) ([]*model.WeekSummary, error) {
	return s.summaries.ByUser(userID)
}

// archive folds a finished period into an immutable summary. First write
// wins: if a summary already exists for the period id the call is a no-op.
func (s *ArchiverService) archive(week *model.Week) error {
	week.RecomputeStats()

	start, end, err := model.PeriodBounds(week.PeriodID)
	if err != nil {
		return err
	}

	summary := &model.WeekSummary{
		UserID:         week.UserID,
		PeriodID:       week.PeriodID,
		TotalGoals:     week.TotalGoals,
		CompletedGoals: week.CompletedGoals,
		SkippedGoals:   week.TotalGoals - week.CompletedGoals,
		Score:          model.PeriodScore(week.CompletedGoals, week.TotalGoals),
		PeriodStart:    start,
		PeriodEnd:      end,
		ArchivedAt:     s.now().UTC(),
	}

	err = s.summaries.Create(summary)
	if err == repository.ErrSummaryExists {
		slog.Debug("period already archived", "user_id", week.UserID, "period_id", week.PeriodID)
		return nil
	}

	return err
}

// seed expands the user's active templates into a fresh period document.
func (s *ArchiverService) seed(userID, kind, periodID string) (*model.Week, error) {
	templates, err := s.templates.ActiveByUser(userID)
	if err != nil {
		return nil, err
	}

	instances, warnings := Expand(templates, periodID, nil)
	for _, w := range warnings {
		slog.Warn("skipping malformed goal template",
			"user_id", userID,
			"template_id", w.TemplateID,
			"reason", w.Reason,
		)
	}

	week := &model.Week{
		UserID:    userID,
		PeriodID:  periodID,
		Instances: instances,
	}
	week.RecomputeStats()

	err = s.weeks.Save(kind, week)
	if err != nil {
		return nil, err
	}

	return week, nil
}
