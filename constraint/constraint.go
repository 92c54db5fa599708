// Package constraint is the catalog of composable rhythm constraints.
// Each constraint is a predicate over a partial or complete event
// sequence; the generator and validator share the same catalog.
package constraint

import (
	"fmt"

	"rhythmdeck/model"
)

type noConsecutiveRests struct{}

func (noConsecutiveRests) Name() string { return "no-consecutive-rests" }

func (noConsecutiveRests) Check(events []model.Event) bool {
	for i := 1; i < len(events); i++ {
		if events[i].Kind == model.Rest && events[i-1].Kind == model.Rest {
			return false
		}
	}
	return true
}

// NoConsecutiveRests rejects two adjacent rest events.
func NoConsecutiveRests() model.Constraint { return noConsecutiveRests{} }

type maxRun struct {
	kind model.Kind
	n    int
}

func (c maxRun) Name() string { return fmt.Sprintf("max-run-%s-%d", c.kind, c.n) }

func (c maxRun) Check(events []model.Event) bool {
	var run int
	for _, e := range events {
		if e.Kind == c.kind {
			run++
			if run > c.n {
				return false
			}
		} else {
			run = 0
		}
	}
	return true
}

// MaxRun allows at most n consecutive events of one kind.
func MaxRun(kind model.Kind, n int) model.Constraint { return maxRun{kind: kind, n: n} }

type maxShortestRun struct {
	shortest int
	n        int
}

func (c maxShortestRun) Name() string {
	return fmt.Sprintf("max-shortest-run-%d", c.n)
}

func (c maxShortestRun) Check(events []model.Event) bool {
	var run int
	for _, e := range events {
		if e.Kind == model.Note && e.Ticks == c.shortest {
			run++
			if run > c.n {
				return false
			}
		} else {
			run = 0
		}
	}
	return true
}

// MaxShortestRun allows at most n consecutive notes of the shortest
// duration in the allowed set. The caller supplies the shortest tick
// count since the constraint itself has no config access.
func MaxShortestRun(shortest, n int) model.Constraint {
	return maxShortestRun{shortest: shortest, n: n}
}

type funcConstraint struct {
	name  string
	check func(events []model.Event) bool
}

func (c funcConstraint) Name() string { return c.name }

func (c funcConstraint) Check(events []model.Event) bool { return c.check(events) }

// Func wraps an arbitrary predicate as a named constraint.
func Func(name string, check func(events []model.Event) bool) model.Constraint {
	return funcConstraint{name: name, check: check}
}
