package model

import (
	"time"
)

const (
	ScoreSourceDream     = "dream"
	ScoreSourceWeek      = "week"
	ScoreSourceConnect   = "connect"
	ScoreSourceMilestone = "milestone"
)

// Default point values awarded per event source.
const (
	PointsGoalCompleted  = 10
	PointsConnectLogged  = 5
	PointsDreamMilestone = 25
)

// ScoreEntry is one append-only event in a user's score ledger. The total
// score is always the sum of entry points; past entries are never edited.
type ScoreEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Source    string    `json:"source"`
	Points    int       `json:"points"`
	Activity  string    `json:"activity"`
	DreamID   string    `json:"dreamId,omitempty"`
	WeekID    string    `json:"weekId,omitempty"`
	ConnectID string    `json:"connectId,omitempty"`
}

// ValidScoreSource reports whether s is a known ledger event source.
func ValidScoreSource(s string) bool {
	switch s {
	case ScoreSourceDream, ScoreSourceWeek, ScoreSourceConnect, ScoreSourceMilestone:
		return true
	}
	return false
}
