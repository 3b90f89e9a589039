package routes

import (
	"net/http"

	"github.com/dreamtrackhq/dreamtrack/internal/app"
	"github.com/dreamtrackhq/dreamtrack/internal/handler"
	"github.com/dreamtrackhq/dreamtrack/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	week := handler.NewWeekHandler(app.Tracker, app.Archiver)
	score := handler.NewScoreHandler(app.ScoreService)
	template := handler.NewTemplateHandler(app.TemplateService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", health.Health)

	// Mutations are rate limited per IP
	rateLimiter := middleware.RateLimitWrites()

	// Current period ({period} is "week" or "month"); reading triggers the
	// lazy rollover check
	mux.HandleFunc("GET /api/users/{userID}/{period}", week.Current)
	mux.HandleFunc("POST /api/users/{userID}/{period}/goals/{goalID}/toggle", rateLimiter(week.Toggle))
	mux.HandleFunc("POST /api/users/{userID}/{period}/goals/{goalID}/decrement", rateLimiter(week.Decrement))
	mux.HandleFunc("POST /api/users/{userID}/{period}/goals/{goalID}/skip", rateLimiter(week.Skip))

	// History
	mux.HandleFunc("GET /api/users/{userID}/weeks", week.History)

	// Score ledger
	mux.HandleFunc("GET /api/users/{userID}/score", score.Score)
	mux.HandleFunc("POST /api/users/{userID}/score/events", rateLimiter(score.RecordEvent))

	// Goal templates
	mux.HandleFunc("GET /api/users/{userID}/templates", template.List)
	mux.HandleFunc("POST /api/users/{userID}/templates", rateLimiter(template.Create))
	mux.HandleFunc("PATCH /api/users/{userID}/templates/{templateID}", rateLimiter(template.Update))
	mux.HandleFunc("DELETE /api/users/{userID}/templates/{templateID}", rateLimiter(template.Deactivate))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.CORS(app.Cfg.CORSOrigin),
		middleware.RequestLogging,
	)

	return h
}
