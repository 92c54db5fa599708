// Package grammar is the tick model: fixed arithmetic relating duration
// names and bank tokens to integer tick counts, parameterized by the
// ticks-per-measure resolution. Pure lookup and arithmetic, no side
// effects.
package grammar

import (
	"fmt"
	"strconv"
)

// DefaultTicksPerMeasure is 4/4 at sixteenth resolution: one sixteenth
// note = 1 tick.
const DefaultTicksPerMeasure = 16

// durationDenoms maps human-readable duration names to the LilyPond-style
// denominator used in bank tokens (quarter note = "4").
var durationDenoms = map[string]int{
	"whole":     1,
	"half":      2,
	"quarter":   4,
	"eighth":    8,
	"sixteenth": 16,
}

// UnknownDurationError reports a token or name outside the recognized
// duration table for the active resolution.
type UnknownDurationError struct {
	Token string
}

func (e *UnknownDurationError) Error() string {
	return fmt.Sprintf("unknown duration %q", e.Token)
}

// InvalidDurationError reports a duration that is arithmetically invalid,
// e.g. dotting an odd tick count.
type InvalidDurationError struct {
	Ticks  int
	Reason string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %d: %s", e.Ticks, e.Reason)
}

// DenominatorTicks converts a LilyPond-style denominator to ticks at the
// given resolution. Denominators that do not divide the measure evenly
// are not in the recognized table for that resolution.
func DenominatorTicks(denom, ticksPerMeasure int) (int, error) {
	if denom <= 0 || ticksPerMeasure%denom != 0 {
		return 0, &UnknownDurationError{Token: strconv.Itoa(denom)}
	}
	return ticksPerMeasure / denom, nil
}

// DurationTicks converts a duration name ("quarter") or numeric
// denominator ("4") to ticks at the given resolution.
func DurationTicks(name string, ticksPerMeasure int) (int, error) {
	denom, ok := durationDenoms[name]
	if !ok {
		n, err := strconv.Atoi(name)
		if err != nil {
			return 0, &UnknownDurationError{Token: name}
		}
		denom = n
	}
	ticks, err := DenominatorTicks(denom, ticksPerMeasure)
	if err != nil {
		return 0, &UnknownDurationError{Token: name}
	}
	return ticks, nil
}

// Dotted extends a duration by half its own length. Odd tick counts
// cannot be dotted without leaving the integer grid.
func Dotted(baseTicks int) (int, error) {
	if baseTicks <= 0 {
		return 0, &InvalidDurationError{Ticks: baseTicks, Reason: "must be positive"}
	}
	if baseTicks%2 != 0 {
		return 0, &InvalidDurationError{Ticks: baseTicks, Reason: "dotting would produce a fractional tick"}
	}
	return baseTicks + baseTicks/2, nil
}
