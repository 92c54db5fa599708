package grammar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationTicksNames(t *testing.T) {
	cases := []struct {
		name  string
		tpm   int
		ticks int
	}{
		{"whole", 16, 16},
		{"half", 16, 8},
		{"quarter", 16, 4},
		{"eighth", 16, 2},
		{"sixteenth", 16, 1},
		{"quarter", 12, 3},
		{"half", 24, 12},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v at %v", c.name, c.tpm), func(t *testing.T) {
			got, err := DurationTicks(c.name, c.tpm)
			assert.NoError(t, err)
			assert.Equal(t, c.ticks, got)
		})
	}
}

func TestDurationTicksNumericDenominators(t *testing.T) {
	assert := assert.New(t)

	got, err := DurationTicks("4", 16)
	assert.NoError(err)
	assert.Equal(4, got)

	got, err = DurationTicks("8", 24)
	assert.NoError(err)
	assert.Equal(3, got)
}

func TestDurationTicksUnknown(t *testing.T) {
	cases := []struct {
		name string
		tpm  int
	}{
		{"triplet", 16},
		{"", 16},
		{"3", 16},         // 3 does not divide 16
		{"sixteenth", 12}, // not representable at 12 ticks
		{"0", 16},
		{"-4", 16},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%q at %v", c.name, c.tpm), func(t *testing.T) {
			_, err := DurationTicks(c.name, c.tpm)
			var unknownErr *UnknownDurationError
			assert.True(t, errors.As(err, &unknownErr), "want UnknownDurationError, got %v", err)
		})
	}
}

func TestDotted(t *testing.T) {
	assert := assert.New(t)

	got, err := Dotted(4)
	assert.NoError(err)
	assert.Equal(6, got)

	got, err = Dotted(2)
	assert.NoError(err)
	assert.Equal(3, got)
}

func TestDottedOddTicksFails(t *testing.T) {
	_, err := Dotted(1)
	var invalidErr *InvalidDurationError
	assert.True(t, errors.As(err, &invalidErr), "want InvalidDurationError, got %v", err)
}

func TestDottedNonPositiveFails(t *testing.T) {
	for _, ticks := range []int{0, -2} {
		_, err := Dotted(ticks)
		var invalidErr *InvalidDurationError
		assert.True(t, errors.As(err, &invalidErr), "want InvalidDurationError for %v, got %v", ticks, err)
	}
}
