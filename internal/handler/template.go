package handler

import (
	"log/slog"
	"net/http"

	"github.com/dreamtrackhq/dreamtrack/internal/repository"
	"github.com/dreamtrackhq/dreamtrack/internal/service"
)

type TemplateHandler struct {
	templates *service.TemplateService
}

func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	templates, err := h.templates.Templates(userID)
	if err != nil {
		slog.Error("failed to list goal templates", "error", err, "user_id", userID)
		respondError(w, http.StatusBadGateway, "could not load goals")
		return
	}

	respondJSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var input service.TemplateInput
	err := decodeJSON(r, &input)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	template, err := h.templates.Create(userID, input)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create goal template", "error", err, "user_id", userID)
		respondError(w, http.StatusBadGateway, "could not save goal")
		return
	}

	respondJSON(w, http.StatusCreated, template)
}

type updateTemplateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Update edits title and description only. Recurrence and frequency are
// fixed once a template exists.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	templateID := r.PathValue("templateID")

	var req updateTemplateRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	template, err := h.templates.UpdateDetails(userID, templateID, req.Title, req.Description)
	if err == repository.ErrTemplateNotFound {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to update goal template", "error", err, "user_id", userID, "template_id", templateID)
		respondError(w, http.StatusBadGateway, "could not save goal")
		return
	}

	respondJSON(w, http.StatusOK, template)
}

// Deactivate retires a template. It stays stored for historical display;
// the expander simply stops materializing it.
func (h *TemplateHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	templateID := r.PathValue("templateID")

	err := h.templates.Deactivate(userID, templateID)
	if err == repository.ErrTemplateNotFound {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to deactivate goal template", "error", err, "user_id", userID, "template_id", templateID)
		respondError(w, http.StatusBadGateway, "could not save goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
