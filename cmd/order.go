package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rhythmdeck/constants"
	"rhythmdeck/deck"
	"rhythmdeck/model"
	"rhythmdeck/util"
)

var (
	orderIn   string
	orderOut  string
	orderSeed int64
)

func init() {
	orderCmd.Flags().StringVar(&orderIn, "in", "", "input raw deck JSON (default <out>/deck_raw.json)")
	orderCmd.Flags().StringVar(&orderOut, "out", "", "output ordered deck JSON (default <out>/deck_order.json)")
	orderCmd.Flags().Int64Var(&orderSeed, "seed", -1, "tie-break RNG seed override (default: deck seed)")
	rootCmd.AddCommand(orderCmd)
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Orders the deck greedily",
	Long: `Reorders the raw deck so early cards cover the bank quickly, then
renumbers cards to match the ordered-prefix semantics pools rely on.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runOrder())
	},
}

func runOrder() error {
	in := orderIn
	if in == "" {
		in = filepath.Join(constants.GetOutDir(), constants.DeckRawFile)
	}
	var doc model.DeckDoc
	if err := util.ReadJSON(in, &doc); err != nil {
		return err
	}

	seed := orderSeed
	if seed < 0 {
		seed = doc.Deck.Seed
	}

	ordered, err := deck.Order(doc, seed)
	if err != nil {
		return err
	}

	out := orderOut
	if out == "" {
		out = filepath.Join(constants.GetOutDir(), constants.DeckOrderFile)
	}
	if err := util.WriteJSON(out, ordered); err != nil {
		return err
	}
	fmt.Printf("Wrote ordered deck: %v (%v cards)\n", out, len(ordered.Cards))
	return nil
}
