package model

import "strconv"

// Kind distinguishes sounded notes from rests.
type Kind uint8

const (
	Note Kind = iota
	Rest
)

func (k Kind) String() string {
	if k == Rest {
		return "rest"
	}
	return "note"
}

// Event is a single note or rest with an exact length in ticks.
// Dotted records that the length came from a dotted token; the ticks are
// already expanded, so the flag only matters when serializing back out.
type Event struct {
	Kind   Kind
	Ticks  int
	Dotted bool
}

// Bar is one full measure. A valid Bar's ticks sum to the configured
// ticks per measure exactly; the generator produces it that way and the
// validator re-checks it for hand-written input.
type Bar struct {
	Events []Event
}

func (b Bar) TotalTicks() int {
	var sum int
	for _, e := range b.Events {
		sum += e.Ticks
	}
	return sum
}

// Key is a stable identity string for deduplication and set comparisons.
func (b Bar) Key() string {
	var res string
	for i, e := range b.Events {
		if i > 0 {
			res += " "
		}
		res += e.Kind.String() + ":" + strconv.Itoa(e.Ticks)
		if e.Dotted {
			res += "."
		}
	}
	return res
}
