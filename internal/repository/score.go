package repository

import (
	"encoding/json"
	"sort"

	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

const collectionScores = "score_entries"

// ScoreRepository is the append-only score ledger. Entries are never
// updated or deleted; totals are derived by summing.
type ScoreRepository interface {
	Append(entry *model.ScoreEntry) error
	Entries(userID string) ([]*model.ScoreEntry, error)
}

type scoreRepository struct {
	store docstore.Store
}

func NewScoreRepository(store docstore.Store) ScoreRepository {
	return &scoreRepository{store: store}
}

func (r *scoreRepository) Append(entry *model.ScoreEntry) error {
	doc, err := docstore.Marshal(entry.UserID, entry.ID, entry)
	if err != nil {
		return err
	}
	// PutIfAbsent keeps a retried append from writing the entry twice.
	err = r.store.PutIfAbsent(collectionScores, doc)
	if err == docstore.ErrExists {
		return nil
	}
	return err
}

func (r *scoreRepository) Entries(userID string) ([]*model.ScoreEntry, error) {
	docs, err := r.store.Query(collectionScores, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.ScoreEntry, 0, len(docs))
	for _, doc := range docs {
		entry := &model.ScoreEntry{}
		err = json.Unmarshal(doc.Body, entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}
