package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rhythmdeck/model"
)

func note(ticks int) model.Event { return model.Event{Kind: model.Note, Ticks: ticks} }
func rest(ticks int) model.Event { return model.Event{Kind: model.Rest, Ticks: ticks} }

func TestNoConsecutiveRests(t *testing.T) {
	c := NoConsecutiveRests()
	assert := assert.New(t)

	assert.True(c.Check(nil))
	assert.True(c.Check([]model.Event{rest(4)}))
	assert.True(c.Check([]model.Event{note(4), rest(4), note(4), rest(4)}))
	assert.False(c.Check([]model.Event{note(4), rest(4), rest(4)}))
	assert.False(c.Check([]model.Event{rest(4), rest(4)}))
}

func TestMaxRun(t *testing.T) {
	c := MaxRun(model.Note, 2)
	assert := assert.New(t)

	assert.True(c.Check([]model.Event{note(4), note(4)}))
	assert.False(c.Check([]model.Event{note(4), note(4), note(4)}))
	// A rest resets the run.
	assert.True(c.Check([]model.Event{note(4), note(4), rest(4), note(2), note(2)}))
}

func TestMaxShortestRun(t *testing.T) {
	c := MaxShortestRun(1, 2)
	assert := assert.New(t)

	short := model.Event{Kind: model.Note, Ticks: 1}
	assert.True(c.Check([]model.Event{short, short}))
	assert.False(c.Check([]model.Event{short, short, short}))
	// Longer notes don't count toward the run.
	assert.True(c.Check([]model.Event{short, short, note(2), short, short}))
	// Rests of the shortest length don't count either.
	assert.True(c.Check([]model.Event{short, short, rest(1), short, short}))
}

func TestFunc(t *testing.T) {
	c := Func("ends-on-note", func(events []model.Event) bool {
		return len(events) == 0 || events[len(events)-1].Kind == model.Note
	})
	assert := assert.New(t)

	assert.Equal("ends-on-note", c.Name())
	assert.True(c.Check([]model.Event{rest(4), note(4)}))
	assert.False(c.Check([]model.Event{note(4), rest(4)}))
}

func TestNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("no-consecutive-rests", NoConsecutiveRests().Name())
	assert.Equal("max-run-note-3", MaxRun(model.Note, 3).Name())
	assert.Equal("max-shortest-run-4", MaxShortestRun(1, 4).Name())
}
