package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rhythmdeck/bank"
	"rhythmdeck/constants"
	"rhythmdeck/deck"
	"rhythmdeck/grammar"
	"rhythmdeck/model"
	"rhythmdeck/util"
)

var (
	dealConfig string
	dealBank   string
	dealOut    string
)

func init() {
	dealCmd.Flags().StringVar(&dealConfig, "config", "", "pools config JSON (default <out>/config_pools.json)")
	dealCmd.Flags().StringVar(&dealBank, "bank", constants.GetBankPath(), "rhythm bank file")
	dealCmd.Flags().StringVar(&dealOut, "out", "", "output deck JSON (default <out>/deck_raw.json)")
	rootCmd.AddCommand(dealCmd)
}

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deals the raw student deck",
	Long:  `Composes the raw student deck: seeded 3x3 cards over the bank, no duplicate cards.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runDeal())
	},
}

func configPath() string {
	if dealConfig != "" {
		return dealConfig
	}
	return filepath.Join(constants.GetOutDir(), constants.PoolsConfigFile)
}

func runDeal() error {
	var cfg model.PoolsConfig
	if err := util.ReadJSON(configPath(), &cfg); err != nil {
		return err
	}

	lines, err := bank.Load(dealBank, grammar.DefaultTicksPerMeasure)
	if err != nil {
		return err
	}

	doc, err := deck.Deal(len(lines), cfg.Deck, dealBank)
	if err != nil {
		return err
	}

	out := dealOut
	if out == "" {
		out = filepath.Join(constants.GetOutDir(), constants.DeckRawFile)
	}
	if err := util.WriteJSON(out, doc); err != nil {
		return err
	}
	fmt.Printf("Wrote raw deck: %v (%v cards, %v tiles each)\n", out, len(doc.Cards), deck.CardSize)
	return nil
}
