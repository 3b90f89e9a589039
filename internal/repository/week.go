package repository

import (
	"encoding/json"
	"errors"

	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

const collectionWeeks = "current_periods"

var (
	ErrWeekNotFound = errors.New("current period not found")
)

// WeekRepository stores the live period document, one per user per period
// kind (weekly, monthly). Writes replace the whole document.
type WeekRepository interface {
	Current(userID, kind string) (*model.Week, error)
	Save(kind string, week *model.Week) error
}

type weekRepository struct {
	store docstore.Store
}

func NewWeekRepository(store docstore.Store) WeekRepository {
	return &weekRepository{store: store}
}

func currentDocID(kind string) string {
	return "current:" + kind
}

func (r *weekRepository) Current(userID, kind string) (*model.Week, error) {
	doc, err := r.store.Get(collectionWeeks, userID, currentDocID(kind))
	if err == docstore.ErrNotFound {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, err
	}

	week := &model.Week{}
	err = json.Unmarshal(doc.Body, week)
	if err != nil {
		return nil, err
	}

	return week, nil
}

func (r *weekRepository) Save(kind string, week *model.Week) error {
	doc, err := docstore.Marshal(week.UserID, currentDocID(kind), week)
	if err != nil {
		return err
	}
	return r.store.Put(collectionWeeks, doc)
}
