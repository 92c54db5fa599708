package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilesAreWellFormed(t *testing.T) {
	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Profile(name, 16)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(name, cfg.Profile)
			assert.Equal(16, cfg.TicksPerMeasure)
			assert.NotEmpty(cfg.AllowedDurations)
			assert.Greater(cfg.MaxEventsPerBar, 0)
			for _, d := range cfg.AllowedDurations {
				assert.Greater(d, 0)
				assert.LessOrEqual(d, 16)
			}
		})
	}
}

func TestProfileDurationsSortedLongestFirst(t *testing.T) {
	cfg, err := Profile("easy", 16)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{16, 8, 4}, cfg.AllowedDurations)
}

func TestProfileScalesWithResolution(t *testing.T) {
	cfg, err := Profile("easy", 24)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{24, 12, 6}, cfg.AllowedDurations)
}

func TestUnknownProfileFails(t *testing.T) {
	_, err := Profile("expert", 16)
	assert.Error(t, err)
}
