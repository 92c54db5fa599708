package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rhythmdeck/model"
)

func note(ticks int) model.Event { return model.Event{Kind: model.Note, Ticks: ticks} }
func rest(ticks int) model.Event { return model.Event{Kind: model.Rest, Ticks: ticks} }

func TestExpectedOnsets(t *testing.T) {
	cases := []struct {
		name   string
		events []model.Event
		want   []int
	}{
		{"four quarters", []model.Event{note(4), note(4), note(4), note(4)}, []int{0, 4, 8, 12}},
		{"rest swallows onset", []model.Event{note(4), rest(4), note(8)}, []int{0, 8}},
		{"leading rest", []model.Event{rest(8), note(4), note(4)}, []int{8, 12}},
		{"all rests", []model.Event{rest(8), rest(8)}, nil},
		{"empty bar", nil, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExpectedOnsets(model.Bar{Events: c.events}))
		})
	}
}

func TestTickMillis(t *testing.T) {
	assert := assert.New(t)

	// 60 bpm: one beat is a second, 16 ticks per 4-beat measure.
	assert.InDelta(250.0, TickMillis(60, 16), 1e-9)
	assert.InDelta(500.0, TickMillis(120, 16), 1e-9)
}

func TestQuantizeAnchorsAtFirstTap(t *testing.T) {
	// 120 bpm, 16 ticks: 125ms per tick. Absolute offset must not
	// matter, only spacing.
	got := Quantize([]int32{90000, 90500, 91000, 91500}, 120, 16)
	assert.Equal(t, []int{0, 4, 8, 12}, got)
}

func TestQuantizeSnapsJitter(t *testing.T) {
	// Taps up to half a tick off still land on the grid.
	got := Quantize([]int32{1000, 1460, 2050, 2490}, 120, 16)
	assert.Equal(t, []int{0, 4, 8, 12}, got)
}

func TestQuantizeEmpty(t *testing.T) {
	assert.Nil(t, Quantize(nil, 120, 16))
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name          string
		expected, got []int
		passed        bool
		missing       int
		extra         int
		offbeat       int
	}{
		{"perfect", []int{0, 4, 8, 12}, []int{0, 4, 8, 12}, true, 0, 0, 0},
		{"one offbeat", []int{0, 4, 8, 12}, []int{0, 5, 8, 12}, false, 0, 0, 1},
		{"missing taps", []int{0, 4, 8, 12}, []int{0, 4}, false, 2, 0, 0},
		{"extra taps", []int{0, 8}, []int{0, 8, 12}, false, 0, 1, 0},
		{"empty take", []int{0, 8}, nil, false, 2, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := Compare(c.expected, c.got)
			assert := assert.New(t)
			assert.Equal(c.passed, g.Passed())
			assert.Equal(c.missing, g.Missing)
			assert.Equal(c.extra, g.Extra)
			assert.Equal(c.offbeat, g.Offbeat)
		})
	}
}
