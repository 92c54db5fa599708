package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"rhythmdeck/model"
)

func TestParseToken(t *testing.T) {
	cases := []struct {
		tok  string
		want model.Event
	}{
		{"c4", model.Event{Kind: model.Note, Ticks: 4}},
		{"r4", model.Event{Kind: model.Rest, Ticks: 4}},
		{"c1", model.Event{Kind: model.Note, Ticks: 16}},
		{"c16", model.Event{Kind: model.Note, Ticks: 1}},
		{"c4.", model.Event{Kind: model.Note, Ticks: 6, Dotted: true}},
		{"r8.", model.Event{Kind: model.Rest, Ticks: 3, Dotted: true}},
	}

	for _, c := range cases {
		t.Run(c.tok, func(t *testing.T) {
			got, err := ParseToken(c.tok, 16)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "c", "x4", "c3", "cq", "4c", "r0", "c-8"} {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseToken(tok, 16)
			var unknownErr *UnknownDurationError
			assert.True(t, errors.As(err, &unknownErr), "want UnknownDurationError, got %v", err)
		})
	}
}

func TestParseTokenDottedSixteenthFails(t *testing.T) {
	// A sixteenth is 1 tick at this resolution; dotting it would leave
	// the integer grid.
	_, err := ParseToken("c16.", 16)
	var invalidErr *InvalidDurationError
	assert.True(t, errors.As(err, &invalidErr), "want InvalidDurationError, got %v", err)
}

func TestParseLine(t *testing.T) {
	bar, err := ParseLine("c4 c8 c8 r4 c4", 16)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(5, len(bar.Events))
	assert.Equal(16, bar.TotalTicks())
}

func TestParseLineBadTokenFails(t *testing.T) {
	// "3" is not a valid duration token at sixteenth resolution.
	_, err := ParseLine("c4 c3 r4", 16)
	var unknownErr *UnknownDurationError
	assert.True(t, errors.As(err, &unknownErr), "want UnknownDurationError, got %v", err)
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"c4 c4 r2",
		"c2 c4. c8",
		"c8. c16 c8 c8 r4 c4",
		"c1",
		"r1",
		"c16 c16 c16 c16 c4 r4 c4",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			bar, err := ParseLine(line, 16)
			assert.NoError(t, err)

			out, err := Serialize(bar, 16)
			assert.NoError(t, err)
			assert.Equal(t, line, out)

			back, err := ParseLine(out, 16)
			assert.NoError(t, err)
			assert.Equal(t, bar, back)
		})
	}
}

func TestSerializeUnrepresentableFails(t *testing.T) {
	bar := model.Bar{Events: []model.Event{{Kind: model.Note, Ticks: 5}}}
	_, err := Serialize(bar, 16)
	var invalidErr *InvalidDurationError
	assert.True(t, errors.As(err, &invalidErr), "want InvalidDurationError, got %v", err)
}
