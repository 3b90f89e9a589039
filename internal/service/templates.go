package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/repository"
	"github.com/dreamtrackhq/dreamtrack/internal/validation"
)

// TemplateInput is the user-authored part of a goal template.
type TemplateInput struct {
	DreamID       string `json:"dreamId"`
	DreamTitle    string `json:"dreamTitle"`
	DreamCategory string `json:"dreamCategory"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Recurrence    string `json:"recurrence"`
	Frequency     int    `json:"frequency"`
	TargetWeeks   int    `json:"targetWeeks"`
	TargetMonths  int    `json:"targetMonths"`
	StartDate     string `json:"startDate"`
}

// TemplateService manages the authored goal templates. Templates are
// deactivated instead of deleted, and once created only their title and
// description may change; recurrence semantics are fixed so that existing
// instances stay consistent with what they copied.
type TemplateService struct {
	repo repository.TemplateRepository
	now  func() time.Time
}

func NewTemplateService(repo repository.TemplateRepository, now func() time.Time) *TemplateService {
	return &TemplateService{repo: repo, now: now}
}

func (s *TemplateService) Create(userID string, input TemplateInput) (*model.GoalTemplate, error) {
	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		// Accept bare dates as well as full timestamps
		startDate, err = time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return nil, validation.Errorf("invalid start date %q", input.StartDate)
		}
	}

	now := s.now().UTC()
	template := &model.GoalTemplate{
		ID:            uuid.New().String(),
		UserID:        userID,
		DreamID:       input.DreamID,
		DreamTitle:    input.DreamTitle,
		DreamCategory: input.DreamCategory,
		Title:         input.Title,
		Description:   input.Description,
		Recurrence:    input.Recurrence,
		Frequency:     input.Frequency,
		TargetWeeks:   input.TargetWeeks,
		TargetMonths:  input.TargetMonths,
		StartDate:     startDate.UTC(),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = validation.ValidateTemplate(template)
	if err != nil {
		return nil, err
	}

	err = s.repo.Create(template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (s *TemplateService) Templates(userID string) ([]*model.GoalTemplate, error) {
	return s.repo.ByUser(userID)
}

func (s *TemplateService) UpdateDetails(userID, templateID, title, description string) (*model.GoalTemplate, error) {
	template, err := s.repo.ByID(userID, templateID)
	if err != nil {
		return nil, err
	}

	template.Title = title
	template.Description = description
	template.UpdatedAt = s.now().UTC()

	err = validation.ValidateTemplate(template)
	if err != nil {
		return nil, err
	}

	err = s.repo.Update(template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (s *TemplateService) Deactivate(userID, templateID string) error {
	template, err := s.repo.ByID(userID, templateID)
	if err != nil {
		return err
	}

	template.Active = false
	template.UpdatedAt = s.now().UTC()

	return s.repo.Update(template)
}
