package app

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dreamtrackhq/dreamtrack/internal/config"
	"github.com/dreamtrackhq/dreamtrack/internal/db"
	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
	"github.com/dreamtrackhq/dreamtrack/internal/repository"
	"github.com/dreamtrackhq/dreamtrack/internal/service"
)

// App holds the explicitly constructed dependency graph: one store client
// created at process start and injected into every component. No package
// holds a hidden singleton.
type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	Store           docstore.Store
	TemplateService *service.TemplateService
	ScoreService    *service.ScoreService
	Archiver        *service.ArchiverService
	Tracker         *service.TrackerService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	store := docstore.NewSQL(database)

	// Repositories
	templateRepository := repository.NewTemplateRepository(store)
	weekRepository := repository.NewWeekRepository(store)
	summaryRepository := repository.NewSummaryRepository(store)
	scoreRepository := repository.NewScoreRepository(store)

	// Services
	templateService := service.NewTemplateService(templateRepository, time.Now)
	scoreService := service.NewScoreService(scoreRepository, time.Now)
	archiver := service.NewArchiverService(weekRepository, summaryRepository, templateRepository, time.Now)
	tracker := service.NewTrackerService(weekRepository, archiver, scoreService, time.Now)

	return &App{
		Cfg:             cfg,
		DB:              database,
		Store:           store,
		TemplateService: templateService,
		ScoreService:    scoreService,
		Archiver:        archiver,
		Tracker:         tracker,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
