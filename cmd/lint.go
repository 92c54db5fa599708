package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rhythmdeck/bank"
	"rhythmdeck/constants"
	"rhythmdeck/gen"
	"rhythmdeck/grammar"
)

var (
	lintProfile string
	lintTicks   int
)

func init() {
	lintCmd.Flags().StringVar(&lintProfile, "profile", "medium", "difficulty profile to lint against")
	lintCmd.Flags().IntVar(&lintTicks, "ticks", grammar.DefaultTicksPerMeasure, "ticks per measure")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint [bank-file]",
	Short: "Lints a rhythm bank",
	Long: `Parses a rhythm bank and validates every line against a difficulty
profile. Rejects are reported per line; a malformed token aborts with
its line number.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := constants.GetBankPath()
		if len(args) == 1 {
			path = args[0]
		}
		cobra.CheckErr(runLint(path))
	},
}

func runLint(path string) error {
	cfg, err := gen.Profile(lintProfile, lintTicks)
	if err != nil {
		return err
	}

	lines, err := bank.Load(path, cfg.TicksPerMeasure)
	if err != nil {
		return err
	}
	results, err := bank.Lint(lines, cfg)
	if err != nil {
		return err
	}

	rejected := 0
	for i, res := range results {
		if res.OK {
			continue
		}
		rejected++
		fmt.Printf("%v:%v: %v (%v)\n", path, lines[i].Number, res.Reason, bank.RhythmID(lines[i].Index))
	}
	fmt.Printf("%v rhythms checked, %v rejected\n", len(lines), rejected)
	if rejected > 0 {
		return fmt.Errorf("%d rhythms rejected", rejected)
	}
	return nil
}
