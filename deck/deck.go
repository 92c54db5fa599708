// Package deck composes student bingo cards from a rhythm bank and
// orders them so early cards cover the bank quickly.
package deck

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"

	"rhythmdeck/bank"
	"rhythmdeck/model"
)

// Student cards are a fixed 3x3 grid. The config may carry rows/cols
// but anything other than 3x3 is refused rather than silently drifting.
const (
	Rows     = 3
	Cols     = 3
	CardSize = Rows * Cols
)

const maxAttemptsPerCard = 2000

// Deal builds the raw deck: NCards cards of CardSize distinct rhythm
// ids, no two cards with an identical rhythm set, fully determined by
// the config seed.
func Deal(nRhythms int, info model.DeckInfo, bankPath string) (model.DeckDoc, error) {
	var doc model.DeckDoc

	if info.Rows == 0 {
		info.Rows = Rows
	}
	if info.Cols == 0 {
		info.Cols = Cols
	}
	if info.Rows != Rows || info.Cols != Cols {
		return doc, fmt.Errorf("student card grid is fixed to 3x3, got %dx%d", info.Rows, info.Cols)
	}
	if info.NCards <= 0 {
		return doc, fmt.Errorf("n_cards must be > 0")
	}
	if info.Seed < 0 {
		return doc, fmt.Errorf("seed must be >= 0")
	}
	if nRhythms < CardSize {
		return doc, fmt.Errorf("need at least %d rhythms in the bank, found %d", CardSize, nRhythms)
	}
	info.CardSize = CardSize

	allRids := make([]string, nRhythms)
	for i := range allRids {
		allRids[i] = bank.RhythmID(i + 1)
	}

	rng := rand.New(rand.NewSource(info.Seed))
	seen := make(map[string]bool)
	var cards []model.Card

	for ci := 1; ci <= info.NCards; ci++ {
		var placed bool
		for attempt := 0; attempt < maxAttemptsPerCard; attempt++ {
			chosen := sampleDistinct(rng, allRids, CardSize)
			key := setKey(chosen)
			if seen[key] {
				continue
			}
			seen[key] = true
			cards = append(cards, model.Card{
				CardID:    fmt.Sprintf("C%03d", ci),
				RhythmIDs: chosen,
			})
			placed = true
			break
		}
		if !placed {
			return doc, fmt.Errorf(
				"failed to compose a unique card after %d attempts; reduce n_cards or grow the bank",
				maxAttemptsPerCard)
		}
	}

	doc = model.DeckDoc{
		Version: "v0.1",
		BuildID: uuid.New().String(),
		Deck:    info,
		Universe: model.RhythmUniverse{
			BankPath: bankPath,
			Count:    nRhythms,
			IDScheme: "R### = 1-based bank line index",
		},
		Cards: cards,
	}
	return doc, nil
}

// sampleDistinct draws k distinct elements, seeded-deterministically.
func sampleDistinct(rng *rand.Rand, pool []string, k int) []string {
	idx := rng.Perm(len(pool))[:k]
	res := make([]string, k)
	for i, j := range idx {
		res[i] = pool[j]
	}
	return res
}

func setKey(rids []string) string {
	sorted := append([]string(nil), rids...)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}
