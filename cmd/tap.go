package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"rhythmdeck/bank"
	"rhythmdeck/constants"
	"rhythmdeck/grammar"
	"rhythmdeck/practice"
)

var (
	tapRhythm string
	tapBank   string
	tapTicks  int
	tapBPM    float64
	tapPort   int
)

func init() {
	tapCmd.Flags().StringVar(&tapRhythm, "rhythm", "R001", "rhythm id to practice")
	tapCmd.Flags().StringVar(&tapBank, "bank", constants.GetBankPath(), "rhythm bank file")
	tapCmd.Flags().IntVar(&tapTicks, "ticks", grammar.DefaultTicksPerMeasure, "ticks per measure")
	tapCmd.Flags().Float64Var(&tapBPM, "bpm", 92, "practice tempo")
	tapCmd.Flags().IntVar(&tapPort, "port", 0, "MIDI input port number")
	rootCmd.AddCommand(tapCmd)
}

var tapCmd = &cobra.Command{
	Use:   "tap",
	Short: "Practice a rhythm on a MIDI input",
	Long: `Listens on a MIDI input and grades each tapped take against a bank
rhythm. A take ends after a short pause.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(tap())
	},
}

func tap() error {
	defer midi.CloseDriver()

	lines, err := bank.Load(tapBank, tapTicks)
	if err != nil {
		return err
	}
	idx1, err := bank.RhythmIndex(tapRhythm)
	if err != nil {
		return err
	}
	if idx1 > len(lines) {
		return fmt.Errorf("rhythm %s not in bank (%d rhythms)", tapRhythm, len(lines))
	}
	target := lines[idx1-1]
	expected := practice.ExpectedOnsets(target.Bar)

	in, err := midi.InPort(tapPort)
	if err != nil {
		return fmt.Errorf("can't open MIDI input %d: %w", tapPort, err)
	}

	var mu sync.Mutex
	var take []int32
	endOfTake := debounce.New(1500 * time.Millisecond)

	grade := func() {
		mu.Lock()
		taps := take
		take = nil
		mu.Unlock()
		if len(taps) == 0 {
			return
		}
		got := practice.Quantize(taps, tapBPM, tapTicks)
		g := practice.Compare(expected, got)
		if g.Passed() {
			fmt.Printf("%v: clean take! (%v onsets)\n", tapRhythm, len(expected))
		} else {
			fmt.Printf("%v: missing=%v extra=%v offbeat=%v (expected %v, got %v)\n",
				tapRhythm, g.Missing, g.Extra, g.Offbeat, g.Expected, g.Got)
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			take = append(take, timestampms)
			mu.Unlock()
			endOfTake(grade)
		default:
			// ignore
		}
	})
	if err != nil {
		return fmt.Errorf("listening to MIDI: %w", err)
	}
	defer stop()

	fmt.Printf("Practicing %v (%v) at %v bpm. Tap away, Ctrl-C to quit\n", tapRhythm, target.Text, tapBPM)
	select {}
}
