package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rhythmdeck",
	Short: "Rhythm bingo material toolchain",
	Long: `Generates constrained-random rhythm banks, lints hand-written ones,
and assembles printable bingo decks, caller pools, and call sheets.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
