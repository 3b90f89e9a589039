package validation

import (
	"strings"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

// ValidateTemplate checks a goal template against the invariants the
// expander relies on. A template that fails here is skipped during
// expansion, never expanded with guessed defaults.
func ValidateTemplate(t *model.GoalTemplate) error {
	if strings.TrimSpace(t.Title) == "" {
		return Error("template title is required")
	}

	if len(t.Title) > 200 {
		return Error("template title is too long (max 200 characters)")
	}

	if t.Frequency < 1 {
		return Errorf("template frequency must be at least 1, got %d", t.Frequency)
	}

	switch t.Recurrence {
	case model.RecurrenceWeekly:
		if t.TargetWeeks < 1 {
			return Error("weekly template requires targetWeeks >= 1")
		}
	case model.RecurrenceMonthly:
		if t.TargetMonths < 1 {
			return Error("monthly template requires targetMonths >= 1")
		}
	case model.RecurrenceOnce:
		// single-period template, no target countdown
	default:
		return Errorf("unknown recurrence %q", t.Recurrence)
	}

	if t.StartDate.IsZero() {
		return Error("template start date is required")
	}

	return nil
}
