package model

// Constraint is a predicate over a partial or complete event sequence.
// The generator consults the active set after each tentative append, the
// validator over the full sequence, so implementations must be happy with
// both partial and complete bars.
type Constraint interface {
	Name() string
	Check(events []Event) bool
}

// MeterConfig is everything one generation or validation run needs.
// Built once from user-facing settings (profile name, seed, count) and
// treated as immutable afterwards.
type MeterConfig struct {
	TicksPerMeasure  int
	AllowedDurations []int
	RestProbability  float64
	MaxEventsPerBar  int
	Constraints      []Constraint
	Profile          string

	// Retry budgets for the generator's backtracking loop. Zero means
	// "use the package defaults" (see gen).
	KindRetries int
	BarRetries  int
}

// Shortest returns the smallest allowed duration, or 0 when the allowed
// set is empty.
func (c MeterConfig) Shortest() int {
	var min int
	for _, d := range c.AllowedDurations {
		if min == 0 || d < min {
			min = d
		}
	}
	return min
}

// AllowsDuration reports membership in the allowed duration set.
func (c MeterConfig) AllowsDuration(ticks int) bool {
	for _, d := range c.AllowedDurations {
		if d == ticks {
			return true
		}
	}
	return false
}
