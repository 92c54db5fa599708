package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"rhythmdeck/model"
)

func TestTilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("tiles", "rhythm_007.ly"), TilePath("tiles", 7))
}

func TestWriteTileSources(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tiles_svg")
	lines := []string{"c4 c4 r4 c4", "c2 c4. c8"}

	assert := assert.New(t)
	assert.NoError(WriteTileSources(dir, lines))

	for i, rhythm := range lines {
		raw, err := os.ReadFile(TilePath(dir, i+1))
		assert.NoError(err)
		src := string(raw)
		assert.Contains(src, rhythm)
		assert.Contains(src, `\new RhythmicStaff`)
		assert.NotContains(src, "%(RHYTHM)")
	}
}

func TestWriteSMF(t *testing.T) {
	bars := []model.Bar{
		{Events: []model.Event{
			{Kind: model.Note, Ticks: 4},
			{Kind: model.Rest, Ticks: 4},
			{Kind: model.Note, Ticks: 8},
		}},
		{Events: []model.Event{
			{Kind: model.Rest, Ticks: 16},
		}},
	}

	path := filepath.Join(t.TempDir(), "bank_preview.mid")
	assert := assert.New(t)
	assert.NoError(WriteSMF(path, bars, 16, 96))

	raw, err := os.ReadFile(path)
	assert.NoError(err)
	assert.True(len(raw) > 0)
	// SMF header chunk.
	assert.Equal("MThd", string(raw[:4]))
}

func TestWriteSMFRejectsBadResolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mid")
	err := WriteSMF(path, nil, 7, 96)
	assert.Error(t, err)
}
