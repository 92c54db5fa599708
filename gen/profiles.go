package gen

import (
	"fmt"
	"sort"
	"strings"

	"rhythmdeck/constraint"
	"rhythmdeck/grammar"
	"rhythmdeck/model"
)

// Difficulty profiles: named presets mapping to a concrete allowed
// duration set and constraint set, so callers can ask for "easy"
// material without hand-tuning the full config. Duration names go
// through the grammar so profiles work at any resolution.

func profileDurations(ticksPerMeasure int, names ...string) ([]int, error) {
	var res []int
	for _, name := range names {
		dotted := strings.HasSuffix(name, ".")
		base := strings.TrimSuffix(name, ".")
		ticks, err := grammar.DurationTicks(base, ticksPerMeasure)
		if err != nil {
			return nil, err
		}
		if dotted {
			ticks, err = grammar.Dotted(ticks)
			if err != nil {
				return nil, err
			}
		}
		res = append(res, ticks)
	}
	// Longest first, matching how a teacher would list them on a board.
	sort.Sort(sort.Reverse(sort.IntSlice(res)))
	return res, nil
}

// Profile builds the MeterConfig for a named difficulty at the given
// resolution. Unknown names are an error, not a silent default.
func Profile(name string, ticksPerMeasure int) (model.MeterConfig, error) {
	cfg := model.MeterConfig{
		TicksPerMeasure: ticksPerMeasure,
		Profile:         name,
	}

	switch name {
	case "easy":
		durs, err := profileDurations(ticksPerMeasure, "whole", "half", "quarter")
		if err != nil {
			return cfg, err
		}
		cfg.AllowedDurations = durs
		cfg.RestProbability = 0.2
		cfg.MaxEventsPerBar = 8
		cfg.Constraints = []model.Constraint{
			constraint.NoConsecutiveRests(),
		}
	case "medium":
		durs, err := profileDurations(ticksPerMeasure, "half", "quarter.", "quarter", "eighth")
		if err != nil {
			return cfg, err
		}
		cfg.AllowedDurations = durs
		cfg.RestProbability = 0.25
		cfg.MaxEventsPerBar = 10
		cfg.Constraints = []model.Constraint{
			constraint.NoConsecutiveRests(),
			constraint.MaxShortestRun(cfg.Shortest(), 4),
		}
	case "hard":
		durs, err := profileDurations(ticksPerMeasure, "half", "quarter.", "quarter", "eighth.", "eighth", "sixteenth")
		if err != nil {
			return cfg, err
		}
		cfg.AllowedDurations = durs
		cfg.RestProbability = 0.3
		cfg.MaxEventsPerBar = ticksPerMeasure
		cfg.Constraints = []model.Constraint{
			constraint.NoConsecutiveRests(),
			constraint.MaxShortestRun(cfg.Shortest(), 4),
			constraint.MaxRun(model.Note, 8),
		}
	default:
		return cfg, fmt.Errorf("unknown difficulty profile %q", name)
	}

	return cfg, nil
}

// ProfileNames lists the recognized difficulty names.
func ProfileNames() []string { return []string{"easy", "medium", "hard"} }
