package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rhythmdeck/constants"
	"rhythmdeck/model"
	"rhythmdeck/pools"
	"rhythmdeck/util"
)

var (
	poolsConfig    string
	poolsDeck      string
	poolsOut       string
	poolsCallSheet string
)

func init() {
	poolsCmd.Flags().StringVar(&poolsConfig, "config", "", "pools config JSON (default <out>/config_pools.json)")
	poolsCmd.Flags().StringVar(&poolsDeck, "deck", "", "ordered deck JSON (default <out>/deck_order.json)")
	poolsCmd.Flags().StringVar(&poolsOut, "out", "", "output pools JSON (default <out>/pools.json)")
	poolsCmd.Flags().StringVar(&poolsCallSheet, "call-sheet", "", "output call sheet text (default <out>/call_sheet.txt)")
	rootCmd.AddCommand(poolsCmd)
}

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "Computes caller pools and the call sheet",
	Long: `Computes the callable rhythm pool per attendance interval, enforcing
the bingo and full-card fairness guarantees by construction.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runPools())
	},
}

func runPools() error {
	outDir := constants.GetOutDir()

	cfgPath := poolsConfig
	if cfgPath == "" {
		cfgPath = filepath.Join(outDir, constants.PoolsConfigFile)
	}
	var cfg model.PoolsConfig
	if err := util.ReadJSON(cfgPath, &cfg); err != nil {
		return err
	}

	deckPath := poolsDeck
	if deckPath == "" {
		deckPath = filepath.Join(outDir, constants.DeckOrderFile)
	}
	var deckDoc model.DeckDoc
	if err := util.ReadJSON(deckPath, &deckDoc); err != nil {
		return err
	}

	doc, err := pools.Compute(cfg, deckDoc)
	if err != nil {
		return err
	}

	out := poolsOut
	if out == "" {
		out = filepath.Join(outDir, constants.PoolsFile)
	}
	if err := util.WriteJSON(out, doc); err != nil {
		return err
	}

	sheetPath := poolsCallSheet
	if sheetPath == "" {
		sheetPath = filepath.Join(outDir, constants.CallSheetFile)
	}
	if err := os.WriteFile(sheetPath, []byte(pools.CallSheet(doc)), 0666); err != nil {
		return err
	}

	fmt.Printf("Wrote pools: %v\n", out)
	fmt.Printf("Wrote call sheet: %v\n", sheetPath)
	return nil
}
