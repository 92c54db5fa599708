package render

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"rhythmdeck/model"
)

// Percussion click on the GM drum channel so the preview is pitch-free.
const (
	clickChannel = 9
	clickKey     = 76 // high wood block
	clickVel     = 100
)

// WriteSMF writes a one-track Standard MIDI File auditioning the bars
// in order, one measure each, rests as silence. The measure is mapped
// to a whole note, so the resolution must divide the whole-note tick
// count.
func WriteSMF(path string, bars []model.Bar, ticksPerMeasure int, bpm float64) error {
	clock := smf.MetricTicks(480)
	whole := uint32(clock.Ticks4th()) * 4
	if ticksPerMeasure <= 0 || whole%uint32(ticksPerMeasure) != 0 {
		return fmt.Errorf("resolution %d does not map onto SMF ticks", ticksPerMeasure)
	}
	per := whole / uint32(ticksPerMeasure)

	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	var pending uint32
	for _, bar := range bars {
		for _, e := range bar.Events {
			d := uint32(e.Ticks) * per
			if e.Kind == model.Rest {
				pending += d
				continue
			}
			tr.Add(pending, midi.NoteOn(clickChannel, clickKey, clickVel))
			tr.Add(d, midi.NoteOff(clickChannel, clickKey))
			pending = 0
		}
	}
	tr.Close(pending)

	s.Add(tr)
	return s.WriteFile(path)
}
