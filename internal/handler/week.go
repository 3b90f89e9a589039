package handler

import (
	"log/slog"
	"net/http"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/service"
)

type WeekHandler struct {
	tracker  *service.TrackerService
	archiver *service.ArchiverService
}

func NewWeekHandler(tracker *service.TrackerService, archiver *service.ArchiverService) *WeekHandler {
	return &WeekHandler{
		tracker:  tracker,
		archiver: archiver,
	}
}

// periodKind maps the route's period segment to a period kind.
func periodKind(r *http.Request) (string, bool) {
	switch r.PathValue("period") {
	case "week":
		return model.PeriodWeekly, true
	case "month":
		return model.PeriodMonthly, true
	}
	return "", false
}

// Current returns the live period document. Reading is enough to trigger
// the lazy rollover check.
func (h *WeekHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	kind, ok := periodKind(r)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown period")
		return
	}

	week, err := h.tracker.Current(userID, kind)
	if err != nil {
		slog.Error("failed to load current period", "error", err, "user_id", userID)
		respondError(w, http.StatusBadGateway, "could not load goals")
		return
	}

	respondJSON(w, http.StatusOK, week)
}

func (h *WeekHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tracker.Toggle)
}

func (h *WeekHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tracker.Decrement)
}

func (h *WeekHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tracker.Skip)
}

func (h *WeekHandler) mutate(w http.ResponseWriter, r *http.Request, op func(userID, kind, goalID string) (*model.Week, error)) {
	userID := r.PathValue("userID")
	goalID := r.PathValue("goalID")

	kind, ok := periodKind(r)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown period")
		return
	}

	week, err := op(userID, kind, goalID)
	if err == service.ErrGoalNotFound {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err == service.ErrGoalNotSkippable {
		respondError(w, http.StatusBadRequest, "only recurring goals can be skipped")
		return
	}
	if err != nil {
		slog.Error("failed to update goal", "error", err, "user_id", userID, "goal_id", goalID)
		respondError(w, http.StatusBadGateway, "could not save goal")
		return
	}

	respondJSON(w, http.StatusOK, week)
}

// History returns the archived period summaries, newest first.
func (h *WeekHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	summaries, err := h.archiver.History(userID)
	if err != nil {
		slog.Error("failed to load period history", "error", err, "user_id", userID)
		respondError(w, http.StatusBadGateway, "could not load history")
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}
