// Package practice compares a live-tapped rhythm against a bank bar.
// Taps arrive as millisecond timestamps from a MIDI input; they are
// quantized onto the tick grid at a chosen tempo and checked against
// the bar's note onsets.
package practice

import (
	"rhythmdeck/model"
)

// ExpectedOnsets returns the tick positions of the sounded notes in a
// bar. Rests occupy time but produce no onset.
func ExpectedOnsets(bar model.Bar) []int {
	var res []int
	var at int
	for _, e := range bar.Events {
		if e.Kind == model.Note {
			res = append(res, at)
		}
		at += e.Ticks
	}
	return res
}

// TickMillis is the duration of one tick in milliseconds at the given
// tempo, assuming a four-beat measure.
func TickMillis(bpm float64, ticksPerMeasure int) float64 {
	beatMillis := 60000.0 / bpm
	return beatMillis * 4.0 / float64(ticksPerMeasure)
}

// Quantize snaps tap timestamps onto the tick grid, anchored at the
// first tap. Timestamps must be ascending.
func Quantize(timestamps []int32, bpm float64, ticksPerMeasure int) []int {
	if len(timestamps) == 0 {
		return nil
	}
	tick := TickMillis(bpm, ticksPerMeasure)
	base := timestamps[0]
	res := make([]int, len(timestamps))
	for i, ts := range timestamps {
		res[i] = int(float64(ts-base)/tick + 0.5)
	}
	return res
}

// Grade compares quantized taps against expected onsets. A take passes
// when every onset lands on its expected tick and no taps are missing
// or extra.
type Grade struct {
	Expected []int
	Got      []int
	Missing  int
	Extra    int
	Offbeat  int
}

func (g Grade) Passed() bool { return g.Missing == 0 && g.Extra == 0 && g.Offbeat == 0 }

func Compare(expected, got []int) Grade {
	g := Grade{Expected: expected, Got: got}
	n := len(expected)
	if len(got) < n {
		g.Missing = n - len(got)
		n = len(got)
	} else if len(got) > n {
		g.Extra = len(got) - n
	}
	for i := 0; i < n; i++ {
		if expected[i] != got[i] {
			g.Offbeat++
		}
	}
	return g
}
