// Package validate decides acceptance of an arbitrary event sequence
// against a MeterConfig. The same check guards the generator's own
// output and lints user-authored rhythm banks, so a reject is an
// ordinary result value, never an error.
package validate

import (
	"fmt"

	"rhythmdeck/model"
)

// Result is Accept or Reject with a reason and the offending index.
// Index is -1 for whole-bar failures (sum, constraint set).
type Result struct {
	OK     bool
	Reason string
	Index  int
}

func Accept() Result { return Result{OK: true, Index: -1} }

func Reject(index int, format string, args ...any) Result {
	return Result{OK: false, Reason: fmt.Sprintf(format, args...), Index: index}
}

// Validate runs the checks in a fixed order so the first failure gives
// the clearest diagnostic: duration membership, sum exactness, event
// count, then each constraint in registration order. Only malformed
// input (non-positive ticks) is a hard error.
func Validate(events []model.Event, cfg model.MeterConfig) (Result, error) {
	for i, e := range events {
		if e.Ticks <= 0 {
			return Result{}, fmt.Errorf("event %d: malformed duration %d", i, e.Ticks)
		}
	}

	for i, e := range events {
		if !cfg.AllowsDuration(e.Ticks) {
			return Reject(i, "duration %d not in allowed set %v", e.Ticks, cfg.AllowedDurations), nil
		}
	}

	var sum int
	for _, e := range events {
		sum += e.Ticks
	}
	if sum > cfg.TicksPerMeasure {
		return Reject(-1, "bar overshoots measure: %d ticks, want %d", sum, cfg.TicksPerMeasure), nil
	}
	if sum < cfg.TicksPerMeasure {
		return Reject(-1, "bar undershoots measure: %d ticks, want %d", sum, cfg.TicksPerMeasure), nil
	}

	if cfg.MaxEventsPerBar > 0 && len(events) > cfg.MaxEventsPerBar {
		return Reject(-1, "too many events: %d, max %d", len(events), cfg.MaxEventsPerBar), nil
	}

	for _, c := range cfg.Constraints {
		if !c.Check(events) {
			return Reject(-1, "constraint %s violated", c.Name()), nil
		}
	}

	return Accept(), nil
}
