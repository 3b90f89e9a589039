package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dreamtrackhq/dreamtrack/internal/db"
	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/repository"
	"github.com/dreamtrackhq/dreamtrack/internal/service"
)

// inWeek1 is a Thursday inside 2025-W01 (which starts Monday 2024-12-30).
var inWeek1 = time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.t = t
}

// env wires the full service stack over a throwaway sqlite store.
type env struct {
	clock     *fakeClock
	store     docstore.Store
	templates repository.TemplateRepository
	weeks     repository.WeekRepository
	summaries repository.SummaryRepository
	scores    repository.ScoreRepository

	templateSvc *service.TemplateService
	scoreSvc    *service.ScoreService
	archiver    *service.ArchiverService
	tracker     *service.TrackerService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	e := &env{
		clock: &fakeClock{t: inWeek1},
		store: docstore.NewSQL(database),
	}

	e.templates = repository.NewTemplateRepository(e.store)
	e.weeks = repository.NewWeekRepository(e.store)
	e.summaries = repository.NewSummaryRepository(e.store)
	e.scores = repository.NewScoreRepository(e.store)

	e.templateSvc = service.NewTemplateService(e.templates, e.clock.Now)
	e.scoreSvc = service.NewScoreService(e.scores, e.clock.Now)
	e.archiver = service.NewArchiverService(e.weeks, e.summaries, e.templates, e.clock.Now)
	e.tracker = service.NewTrackerService(e.weeks, e.archiver, e.scoreSvc, e.clock.Now)

	return e
}

func weeklyTemplate(userID string, frequency, targetWeeks int, start time.Time) *model.GoalTemplate {
	return &model.GoalTemplate{
		ID:            uuid.New().String(),
		UserID:        userID,
		DreamID:       "dream-1",
		DreamTitle:    "Run a marathon",
		DreamCategory: "health",
		Title:         "Go for a run",
		Recurrence:    model.RecurrenceWeekly,
		Frequency:     frequency,
		TargetWeeks:   targetWeeks,
		StartDate:     start,
		Active:        true,
		CreatedAt:     start,
		UpdatedAt:     start,
	}
}

func monthlyTemplate(userID string, frequency, targetMonths int, start time.Time) *model.GoalTemplate {
	tmpl := weeklyTemplate(userID, frequency, 0, start)
	tmpl.Title = "Read a book"
	tmpl.Recurrence = model.RecurrenceMonthly
	tmpl.TargetMonths = targetMonths
	return tmpl
}
