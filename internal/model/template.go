package model

import (
	"time"
)

const (
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceOnce    = "once"
)

// GoalTemplate is a user-authored recurring goal definition attached to a
// dream. Templates are deactivated rather than deleted; instances copy
// recurrence and frequency at expansion time, so later template edits never
// rewrite history.
type GoalTemplate struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	DreamID       string    `json:"dreamId"`
	DreamTitle    string    `json:"dreamTitle"`
	DreamCategory string    `json:"dreamCategory"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Recurrence    string    `json:"recurrence"`
	Frequency     int       `json:"frequency"`
	TargetWeeks   int       `json:"targetWeeks,omitempty"`
	TargetMonths  int       `json:"targetMonths,omitempty"`
	StartDate     time.Time `json:"startDate"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TargetPeriods returns the number of periods the template remains due,
// based on its recurrence. A "once" template is due for a single period.
func (t *GoalTemplate) TargetPeriods() int {
	switch t.Recurrence {
	case RecurrenceMonthly:
		return t.TargetMonths
	case RecurrenceOnce:
		return 1
	default:
		return t.TargetWeeks
	}
}

// StartPeriodID returns the id of the first period the template is due in.
func (t *GoalTemplate) StartPeriodID() string {
	if t.Recurrence == RecurrenceMonthly {
		return MonthID(t.StartDate)
	}
	return WeekID(t.StartDate)
}
