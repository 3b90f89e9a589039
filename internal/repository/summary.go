package repository

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

const collectionSummaries = "period_summaries"

var (
	ErrSummaryNotFound = errors.New("period summary not found")
	ErrSummaryExists   = errors.New("period summary already archived")
)

// SummaryRepository stores immutable period summaries keyed by period id.
// Create is first-write-wins; archived summaries are never replaced.
type SummaryRepository interface {
	Create(summary *model.WeekSummary) error
	ByPeriod(userID, periodID string) (*model.WeekSummary, error)
	ByUser(userID string) ([]*model.WeekSummary, error)
}

type summaryRepository struct {
	store docstore.Store
}

func NewSummaryRepository(store docstore.Store) SummaryRepository {
	return &summaryRepository{store: store}
}

func (r *summaryRepository) Create(summary *model.WeekSummary) error {
	doc, err := docstore.Marshal(summary.UserID, summary.PeriodID, summary)
	if err != nil {
		return err
	}

	err = r.store.PutIfAbsent(collectionSummaries, doc)
	if err == docstore.ErrExists {
		return ErrSummaryExists
	}
	return err
}

func (r *summaryRepository) ByPeriod(userID, periodID string) (*model.WeekSummary, error) {
	doc, err := r.store.Get(collectionSummaries, userID, periodID)
	if err == docstore.ErrNotFound {
		return nil, ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}

	summary := &model.WeekSummary{}
	err = json.Unmarshal(doc.Body, summary)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *summaryRepository) ByUser(userID string) ([]*model.WeekSummary, error) {
	docs, err := r.store.Query(collectionSummaries, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.WeekSummary, 0, len(docs))
	for _, doc := range docs {
		summary := &model.WeekSummary{}
		err = json.Unmarshal(doc.Body, summary)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	// Most recently archived first
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].PeriodStart.After(summaries[j].PeriodStart)
	})

	return summaries, nil
}
