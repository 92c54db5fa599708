package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rhythmdeck/constants"
	"rhythmdeck/util"
)

var (
	buildSkipTiles bool
	buildSkipQC    bool
)

func init() {
	buildCmd.Flags().BoolVar(&buildSkipTiles, "skip-tiles", false, "skip the LilyPond tile stage")
	buildCmd.Flags().BoolVar(&buildSkipQC, "skip-qc", false, "skip the deck QC stage")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Runs the whole deterministic pipeline",
	Long: `Runs lint, tiles, deal, order, pools, and QC in sequence against the
configured bank and pools config. One command, printable outputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runBuild())
	},
}

func runBuild() error {
	if err := util.EnsureDir(constants.GetOutDir()); err != nil {
		return err
	}

	fmt.Println("== lint")
	if err := runLint(constants.GetBankPath()); err != nil {
		return err
	}

	if !buildSkipTiles {
		fmt.Println("== render")
		if err := runRender(); err != nil {
			return err
		}
	}

	fmt.Println("== deal")
	if err := runDeal(); err != nil {
		return err
	}

	fmt.Println("== order")
	if err := runOrder(); err != nil {
		return err
	}

	fmt.Println("== pools")
	if err := runPools(); err != nil {
		return err
	}

	if !buildSkipQC {
		fmt.Println("== qc")
		if err := runQC(); err != nil {
			return err
		}
	}

	fmt.Println("Build complete.")
	return nil
}
