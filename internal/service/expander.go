package service

import (
	"github.com/google/uuid"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
	"github.com/dreamtrackhq/dreamtrack/internal/validation"
)

// IntegrityWarning reports a template that was skipped during expansion
// because it violates an invariant. One bad template never blocks the rest
// of the user's templates; warnings are logged, not surfaced to users.
type IntegrityWarning struct {
	TemplateID string
	Reason     string
}

// Expand materializes the goal instances that should exist for periodID
// from the user's active templates. It is pure and idempotent: templates
// with an id in existing are left alone, so running it twice for the same
// period produces no duplicates.
//
// A template is due when the target period is between its start period and
// the end of its countdown. The first due period counts down from
// targetPeriods-1; the final tracked period is labeled 0 and a template
// whose countdown has gone negative is lapsed (left active for historical
// display, but no longer expanded). Periods before the start are never
// backfilled.
func Expand(templates []*model.GoalTemplate, periodID string, existing map[string]bool) ([]*model.GoalInstance, []IntegrityWarning) {
	var instances []*model.GoalInstance
	var warnings []IntegrityWarning

	wantWeek := model.IsWeekID(periodID)

	for _, template := range templates {
		if !template.Active || existing[template.ID] {
			continue
		}

		err := validation.ValidateTemplate(template)
		if err != nil {
			warnings = append(warnings, IntegrityWarning{
				TemplateID: template.ID,
				Reason:     err.Error(),
			})
			continue
		}

		// Weekly and once templates live in week periods, monthly in months.
		if wantWeek == (template.Recurrence == model.RecurrenceMonthly) {
			continue
		}

		elapsed, err := model.PeriodsBetween(template.StartPeriodID(), periodID)
		if err != nil {
			warnings = append(warnings, IntegrityWarning{
				TemplateID: template.ID,
				Reason:     err.Error(),
			})
			continue
		}

		if elapsed < 0 {
			continue // not due yet
		}

		remaining := template.TargetPeriods() - elapsed - 1
		if remaining < 0 {
			continue // lapsed
		}

		instances = append(instances, newInstance(template, periodID, remaining))
	}

	return instances, warnings
}

func newInstance(template *model.GoalTemplate, periodID string, remaining int) *model.GoalInstance {
	instance := &model.GoalInstance{
		ID:            uuid.New().String(),
		TemplateID:    template.ID,
		DreamID:       template.DreamID,
		DreamTitle:    template.DreamTitle,
		DreamCategory: template.DreamCategory,
		Title:         template.Title,
		Description:   template.Description,
		Recurrence:    template.Recurrence,
		Frequency:     template.Frequency,
		WeekID:        periodID,
	}

	switch template.Recurrence {
	case model.RecurrenceMonthly:
		instance.Type = model.GoalTypeMonthly
		instance.MonthsRemaining = remaining
	case model.RecurrenceOnce:
		instance.Type = model.GoalTypeDeadline
	default:
		instance.Type = model.GoalTypeWeekly
		instance.WeeksRemaining = remaining
	}

	return instance
}
