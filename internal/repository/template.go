package repository

import (
	"encoding/json"
	"errors"

	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

const collectionTemplates = "goal_templates"

var (
	ErrTemplateNotFound = errors.New("goal template not found")
)

type TemplateRepository interface {
	Create(template *model.GoalTemplate) error
	ByID(userID, templateID string) (*model.GoalTemplate, error)
	ByUser(userID string) ([]*model.GoalTemplate, error)
	ActiveByUser(userID string) ([]*model.GoalTemplate, error)
	Update(template *model.GoalTemplate) error
}

type templateRepository struct {
	store docstore.Store
}

func NewTemplateRepository(store docstore.Store) TemplateRepository {
	return &templateRepository{store: store}
}

func (r *templateRepository) Create(template *model.GoalTemplate) error {
	doc, err := docstore.Marshal(template.UserID, template.ID, template)
	if err != nil {
		return err
	}
	return r.store.Put(collectionTemplates, doc)
}

func (r *templateRepository) ByID(userID, templateID string) (*model.GoalTemplate, error) {
	doc, err := r.store.Get(collectionTemplates, userID, templateID)
	if err == docstore.ErrNotFound {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}

	template := &model.GoalTemplate{}
	err = json.Unmarshal(doc.Body, template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (r *templateRepository) ByUser(userID string) ([]*model.GoalTemplate, error) {
	docs, err := r.store.Query(collectionTemplates, userID)
	if err != nil {
		return nil, err
	}

	templates := make([]*model.GoalTemplate, 0, len(docs))
	for _, doc := range docs {
		template := &model.GoalTemplate{}
		err = json.Unmarshal(doc.Body, template)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	return templates, nil
}

func (r *templateRepository) ActiveByUser(userID string) ([]*model.GoalTemplate, error) {
	templates, err := r.ByUser(userID)
	if err != nil {
		return nil, err
	}

	active := templates[:0]
	for _, template := range templates {
		if template.Active {
			active = append(active, template)
		}
	}

	return active, nil
}

func (r *templateRepository) Update(template *model.GoalTemplate) error {
	// Replace-by-id upsert; existence is checked by callers that care.
	return r.Create(template)
}
