package model

import (
	"time"
)

const (
	GoalTypeWeekly      = "weekly_goal"
	GoalTypeMonthly     = "monthly_goal"
	GoalTypeDeadline    = "deadline"
	GoalTypeConsistency = "consistency"
)

// GoalInstance is one period's concrete occurrence of a template, or a
// standalone deadline goal. Dream fields are denormalized copies taken at
// expansion time and are not kept in sync with later dream edits.
type GoalInstance struct {
	ID              string     `json:"id"`
	TemplateID      string     `json:"templateId,omitempty"`
	Type            string     `json:"type"`
	DreamID         string     `json:"dreamId"`
	DreamTitle      string     `json:"dreamTitle"`
	DreamCategory   string     `json:"dreamCategory"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Recurrence      string     `json:"recurrence"`
	Frequency       int        `json:"frequency"`
	CompletionCount int        `json:"completionCount"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt"`
	Skipped         bool       `json:"skipped"`
	WeeksRemaining  int        `json:"weeksRemaining,omitempty"`
	MonthsRemaining int        `json:"monthsRemaining,omitempty"`
	WeekID          string     `json:"weekId"`
}

// Recurring reports whether the instance was materialized from a template.
// Standalone deadline goals are not recurring and cannot be skipped.
func (g *GoalInstance) Recurring() bool {
	return g.TemplateID != ""
}
