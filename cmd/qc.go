package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rhythmdeck/constants"
	"rhythmdeck/model"
	"rhythmdeck/qc"
	"rhythmdeck/util"
)

var (
	qcConfig  string
	qcDeck    string
	qcPools   string
	qcOutJSON string
	qcOutCSV  string
)

func init() {
	qcCmd.Flags().StringVar(&qcConfig, "config", "", "pools config JSON (default <out>/config_pools.json)")
	qcCmd.Flags().StringVar(&qcDeck, "deck", "", "ordered deck JSON (default <out>/deck_order.json)")
	qcCmd.Flags().StringVar(&qcPools, "pools", "", "pools JSON (default <out>/pools.json if present)")
	qcCmd.Flags().StringVar(&qcOutJSON, "out-json", "", "output QC JSON (default <out>/deck_qc.json)")
	qcCmd.Flags().StringVar(&qcOutCSV, "out-csv", "", "output QC CSV (default <out>/deck_qc.csv)")
	rootCmd.AddCommand(qcCmd)
}

var qcCmd = &cobra.Command{
	Use:   "qc",
	Short: "Computes deck QC diagnostics",
	Long:  `Computes per-interval deck diagnostics and re-checks the fairness guarantees against the published pools.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runQC())
	},
}

func runQC() error {
	outDir := constants.GetOutDir()

	cfgPath := qcConfig
	if cfgPath == "" {
		cfgPath = filepath.Join(outDir, constants.PoolsConfigFile)
	}
	var cfg model.PoolsConfig
	if err := util.ReadJSON(cfgPath, &cfg); err != nil {
		return err
	}

	deckPath := qcDeck
	if deckPath == "" {
		deckPath = filepath.Join(outDir, constants.DeckOrderFile)
	}
	var deckDoc model.DeckDoc
	if err := util.ReadJSON(deckPath, &deckDoc); err != nil {
		return err
	}

	poolsPath := qcPools
	if poolsPath == "" {
		poolsPath = filepath.Join(outDir, constants.PoolsFile)
	}
	var poolsDoc *model.PoolsDoc
	if _, err := os.Stat(poolsPath); err == nil {
		var pd model.PoolsDoc
		if err := util.ReadJSON(poolsPath, &pd); err != nil {
			return err
		}
		poolsDoc = &pd
	}

	doc, err := qc.Compute(cfg, deckDoc, poolsDoc)
	if err != nil {
		return err
	}

	outJSON := qcOutJSON
	if outJSON == "" {
		outJSON = filepath.Join(outDir, constants.DeckQCJSONFile)
	}
	if err := util.WriteJSON(outJSON, doc); err != nil {
		return err
	}

	outCSV := qcOutCSV
	if outCSV == "" {
		outCSV = filepath.Join(outDir, constants.DeckQCCSVFile)
	}
	if err := qc.WriteCSV(outCSV, doc); err != nil {
		return err
	}

	fmt.Printf("Wrote deck QC JSON: %v\n", outJSON)
	fmt.Printf("Wrote deck QC CSV : %v\n", outCSV)
	return nil
}
