package validation

import (
	"strings"

	"github.com/dreamtrackhq/dreamtrack/internal/model"
)

// ValidateScoreEvent checks a ledger event before it is appended. A
// malformed event is rejected outright; it must never reach the ledger.
func ValidateScoreEvent(source string, points int, activity string) error {
	if !model.ValidScoreSource(source) {
		return Errorf("unknown score source %q", source)
	}

	if points == 0 {
		return Error("score event requires a nonzero point value")
	}

	if strings.TrimSpace(activity) == "" {
		return Error("score event requires an activity label")
	}

	return nil
}
