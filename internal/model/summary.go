package model

import (
	"time"
)

// WeekSummary is the immutable archive of one finished period. It is written
// exactly once, when the period rolls over, and never mutated afterwards.
type WeekSummary struct {
	UserID         string    `json:"userId"`
	PeriodID       string    `json:"periodId"`
	TotalGoals     int       `json:"totalGoals"`
	CompletedGoals int       `json:"completedGoals"`
	SkippedGoals   int       `json:"skippedGoals"`
	Score          int       `json:"score"`
	PeriodStart    time.Time `json:"periodStart"`
	PeriodEnd      time.Time `json:"periodEnd"`
	ArchivedAt     time.Time `json:"archivedAt"`
}
