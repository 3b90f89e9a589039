package handler

import (
	"log/slog"
	"net/http"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/service"
)

type ScoreHandler struct {
	scores *service.ScoreService
}

func NewScoreHandler(scores *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

type scoreResponse struct {
	Total   int                 `json:"total"`
	Entries []*model.ScoreEntry `json:"entries"`
}

// Score returns the ledger and its sum. The total is computed here, never
// read from a stored counter.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	entries, err := h.scores.Entries(userID)
	if err != nil {
		slog.Error("failed to load score ledger", "error", err, "user_id", userID)
		respondError(w, http.StatusBadGateway, "could not load score")
		return
	}

	total := 0
	for _, entry := range entries {
		total += entry.Points
	}

	respondJSON(w, http.StatusOK, scoreResponse{Total: total, Entries: entries})
}

type recordEventRequest struct {
	Source    string `json:"source"`
	Points    int    `json:"points"`
	Activity  string `json:"activity"`
	DreamID   string `json:"dreamId"`
	WeekID    string `json:"weekId"`
	ConnectID string `json:"connectId"`
}

// RecordEvent appends a connect/milestone/dream event to the ledger. Goal
// completions are recorded by the tracker, not through this endpoint.
func (h *ScoreHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var req recordEventRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.scores.RecordEvent(userID, req.Source, req.Points, req.Activity, service.EventRefs{
		DreamID:   req.DreamID,
		WeekID:    req.WeekID,
		ConnectID: req.ConnectID,
	})
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to record score event", "error", err, "user_id", userID)
		respondError(w, http.StatusBadGateway, "could not save event")
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}
