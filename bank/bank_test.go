package bank

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rhythmdeck/gen"
	"rhythmdeck/grammar"
	"rhythmdeck/model"
)

const sampleBank = `# teaching bank, medium
c4 c4 r4 c4

c2 c4. c8
# a comment between rhythms
c8 c8 c4 r2
`

func TestLoadReaderSkipsCommentsAndBlanks(t *testing.T) {
	lines, err := LoadReader(strings.NewReader(sampleBank), "rhythms.txt", 16)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(3, len(lines))

	// Line numbers point at the file, indexes at the payload.
	assert.Equal(2, lines[0].Number)
	assert.Equal(1, lines[0].Index)
	assert.Equal(4, lines[1].Number)
	assert.Equal(2, lines[1].Index)
	assert.Equal(6, lines[2].Number)
	assert.Equal(3, lines[2].Index)

	for _, ln := range lines {
		assert.Equal(16, ln.Bar.TotalTicks())
	}
}

func TestLoadReaderAttributesParseErrors(t *testing.T) {
	src := "c4 c4 r4 c4\nc4 c3 r4\n"
	_, err := LoadReader(strings.NewReader(src), "rhythms.txt", 16)

	var parseErr *ParseError
	assert := assert.New(t)
	assert.True(errors.As(err, &parseErr), "want ParseError, got %v", err)
	assert.Equal(2, parseErr.Line)
	assert.Equal("rhythms.txt", parseErr.Path)

	var unknownErr *grammar.UnknownDurationError
	assert.True(errors.As(err, &unknownErr), "want wrapped UnknownDurationError, got %v", err)
	assert.Contains(err.Error(), "rhythms.txt:2:")
}

func TestWriteLoadRoundTrip(t *testing.T) {
	cfg, err := gen.Profile("medium", 16)
	assert := assert.New(t)
	assert.NoError(err)

	bars, err := gen.Generate(cfg, 12, 99)
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "rhythms.txt")
	assert.NoError(Write(path, bars, 16, "generated for round-trip test"))

	lines, err := Load(path, 16)
	assert.NoError(err)
	assert.Equal(len(bars), len(lines))
	for i, ln := range lines {
		assert.Equal(bars[i], ln.Bar)
	}
}

func TestLint(t *testing.T) {
	cfg := model.MeterConfig{
		TicksPerMeasure:  16,
		AllowedDurations: []int{8, 4, 2},
		MaxEventsPerBar:  8,
	}

	src := "c4 c4 c4 c4\nc4 c4 c4\n"
	lines, err := LoadReader(strings.NewReader(src), "rhythms.txt", 16)
	assert := assert.New(t)
	assert.NoError(err)

	results, err := Lint(lines, cfg)
	assert.NoError(err)
	assert.Equal(2, len(results))
	assert.True(results[0].OK)
	assert.False(results[1].OK)
	assert.Contains(results[1].Reason, "undershoot")
}

func TestRhythmIDs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R001", RhythmID(1))
	assert.Equal("R042", RhythmID(42))

	idx, err := RhythmIndex("R042")
	assert.NoError(err)
	assert.Equal(42, idx)

	idx, err = RhythmIndex(" R007 ")
	assert.NoError(err)
	assert.Equal(7, idx)

	for _, bad := range []string{"", "R1", "Rabc", "042", "R0000", "R000"} {
		_, err := RhythmIndex(bad)
		assert.Error(err, "expected error for %q", bad)
	}
}
