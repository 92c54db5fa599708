// Package gen is the constrained rhythm generator: greedy duration
// sampling with bounded backtracking, seeded explicitly so batches are
// exactly reproducible.
package gen

import (
	"fmt"
	"math/rand"

	"rhythmdeck/model"
)

// Default retry budgets. Both are configuration on MeterConfig; these
// kick in when the config leaves them zero.
const (
	DefaultKindRetries = 20
	DefaultBarRetries  = 100
)

// GenerationExhaustedError means the retry budget ran out without
// producing a valid bar. That signals an unsatisfiable config, not a
// transient condition, so it carries the config for diagnostics.
type GenerationExhaustedError struct {
	Config   model.MeterConfig
	Attempts int
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf(
		"generation exhausted after %d attempts (ticks=%d allowed=%v maxEvents=%d restProb=%v)",
		e.Attempts, e.Config.TicksPerMeasure, e.Config.AllowedDurations,
		e.Config.MaxEventsPerBar, e.Config.RestProbability)
}

// subSeed derives an independent per-bar seed from the batch seed via a
// splitmix64 step. Each bar gets its own stream, so the produced set of
// bars does not depend on generation order or parallelism degree.
func subSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4568b
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// Generate produces count bars for the config. Same (config, count,
// seed) always yields the same sequence of bars.
func Generate(cfg model.MeterConfig, count int, seed int64) ([]model.Bar, error) {
	bars := make([]model.Bar, 0, count)
	for i := 0; i < count; i++ {
		rng := rand.New(rand.NewSource(subSeed(seed, i)))
		bar, err := GenerateOne(cfg, rng)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// GenerateOne produces a single bar from an explicit random source.
func GenerateOne(cfg model.MeterConfig, rng *rand.Rand) (model.Bar, error) {
	barRetries := cfg.BarRetries
	if barRetries == 0 {
		barRetries = DefaultBarRetries
	}
	kindRetries := cfg.KindRetries
	if kindRetries == 0 {
		kindRetries = DefaultKindRetries
	}

	for attempt := 0; attempt < barRetries; attempt++ {
		if bar, ok := tryBar(cfg, rng, kindRetries); ok {
			return bar, nil
		}
	}
	return model.Bar{}, &GenerationExhaustedError{Config: cfg, Attempts: barRetries}
}

// tryBar runs one greedy fill of the measure. Any dead end (no candidate
// duration fits, event budget hit, or constraints reject every sampled
// option) discards the attempt; the caller restarts from an empty bar.
func tryBar(cfg model.MeterConfig, rng *rand.Rand, kindRetries int) (model.Bar, bool) {
	remaining := cfg.TicksPerMeasure
	events := make([]model.Event, 0, cfg.MaxEventsPerBar)

	for remaining > 0 {
		if cfg.MaxEventsPerBar > 0 && len(events) >= cfg.MaxEventsPerBar {
			return model.Bar{}, false
		}

		candidates := candidateDurations(cfg.AllowedDurations, remaining)
		if len(candidates) == 0 {
			// Partial bar is unsatisfiable under the allowed set.
			return model.Bar{}, false
		}

		appended := false
		for try := 0; try < kindRetries && !appended; try++ {
			d := candidates[rng.Intn(len(candidates))]
			kind := model.Note
			if rng.Float64() < cfg.RestProbability {
				kind = model.Rest
			}

			evt := model.Event{Kind: kind, Ticks: d, Dotted: needsDot(cfg.TicksPerMeasure, d)}
			if constraintsAllow(cfg.Constraints, events, evt) {
				events = append(events, evt)
				appended = true
				break
			}
			// Flip the kind before giving up on this duration.
			evt.Kind = flip(kind)
			if constraintsAllow(cfg.Constraints, events, evt) {
				events = append(events, evt)
				appended = true
				break
			}
			// Both kinds violate; loop resamples the duration.
		}
		if !appended {
			return model.Bar{}, false
		}
		remaining -= events[len(events)-1].Ticks
	}

	// remaining == 0: the sum invariant holds by construction.
	return model.Bar{Events: events}, true
}

func candidateDurations(allowed []int, remaining int) []int {
	res := make([]int, 0, len(allowed))
	for _, d := range allowed {
		if d > 0 && d <= remaining {
			res = append(res, d)
		}
	}
	return res
}

func constraintsAllow(constraints []model.Constraint, events []model.Event, evt model.Event) bool {
	extended := append(events[:len(events):len(events)], evt)
	for _, c := range constraints {
		if !c.Check(extended) {
			return false
		}
	}
	return true
}

func flip(k model.Kind) model.Kind {
	if k == model.Rest {
		return model.Note
	}
	return model.Rest
}

// needsDot reports whether a tick count only has a dotted token at this
// resolution, so serialization round-trips.
func needsDot(ticksPerMeasure, ticks int) bool {
	if ticksPerMeasure%ticks == 0 {
		return false
	}
	if ticks%3 != 0 {
		return false
	}
	base := ticks * 2 / 3
	return ticksPerMeasure%base == 0
}
