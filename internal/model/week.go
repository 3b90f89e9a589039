package model

// Week is the live state of one user's current period: the materialized goal
// instances plus cached stats. The stats are always recomputed from the
// instance list after every mutation; they are never written independently.
type Week struct {
	UserID         string          `json:"userId"`
	PeriodID       string          `json:"periodId"`
	Instances      []*GoalInstance `json:"instances"`
	TotalGoals     int             `json:"totalGoals"`
	CompletedGoals int             `json:"completedGoals"`
	Score          int             `json:"score"`
}

// Instance returns the instance with the given id, or nil.
func (w *Week) Instance(id string) *GoalInstance {
	for _, g := range w.Instances {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// RecomputeStats rebuilds the cached counters and the running period score
// from the instance list.
func (w *Week) RecomputeStats() {
	total := len(w.Instances)
	completed := 0
	for _, g := range w.Instances {
		if g.Completed {
			completed++
		}
	}

	w.TotalGoals = total
	w.CompletedGoals = completed
	w.Score = PeriodScore(completed, total)
}

// PeriodScore is the 0-100 completion score for a period.
func PeriodScore(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
