package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rhythmdeck/bank"
	"rhythmdeck/constants"
	"rhythmdeck/grammar"
	"rhythmdeck/model"
	"rhythmdeck/render"
	"rhythmdeck/util"
)

var (
	renderBank        string
	renderTiles       string
	renderTicks       int
	renderSourcesOnly bool
	renderSMF         bool
	renderBPM         float64
)

func init() {
	renderCmd.Flags().StringVar(&renderBank, "bank", constants.GetBankPath(), "rhythm bank file")
	renderCmd.Flags().StringVar(&renderTiles, "tiles", constants.GetTilesDir(), "tiles output directory")
	renderCmd.Flags().IntVar(&renderTicks, "ticks", grammar.DefaultTicksPerMeasure, "ticks per measure")
	renderCmd.Flags().BoolVar(&renderSourcesOnly, "sources-only", false, "write .ly sources without invoking lilypond")
	renderCmd.Flags().BoolVar(&renderSMF, "smf", true, "also write the SMF audio preview")
	renderCmd.Flags().Float64Var(&renderBPM, "bpm", 92, "preview tempo")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders tiles and the bank preview",
	Long: `Writes one LilyPond tile source per bank line (invoking lilypond when
available) and an SMF click preview of the whole bank.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runRender())
	},
}

func runRender() error {
	lines, err := bank.Load(renderBank, renderTicks)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no rhythms found in %s", renderBank)
	}

	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
	}
	if err := render.WriteTileSources(renderTiles, texts); err != nil {
		return err
	}
	fmt.Printf("Wrote %v tile sources into %v/\n", len(texts), renderTiles)

	if !renderSourcesOnly {
		if !render.HaveLilypond() {
			fmt.Println("lilypond not found on PATH; skipping SVG rendering")
		} else {
			if err := render.RenderTiles(renderTiles, len(texts)); err != nil {
				return err
			}
			fmt.Printf("Rendered %v tiles into %v/\n", len(texts), renderTiles)
		}
	}

	if renderSMF {
		bars := make([]model.Bar, len(lines))
		for i, ln := range lines {
			bars[i] = ln.Bar
		}
		smfPath := filepath.Join(constants.GetOutDir(), constants.PreviewSMFFile)
		if err := util.EnsureDir(constants.GetOutDir()); err != nil {
			return err
		}
		if err := render.WriteSMF(smfPath, bars, renderTicks, renderBPM); err != nil {
			return err
		}
		fmt.Printf("Wrote bank preview: %v\n", smfPath)
	}
	return nil
}
