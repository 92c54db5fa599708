// Package pools computes callable rhythm pools per attendance interval
// and enforces the deck fairness guarantees by construction:
//
//	A. every card in play has at least one fully callable bingo line
//	B. at least one card in play is fully callable (a full-card win
//	   stays possible)
package pools

import (
	"fmt"
	"sort"
	"strings"

	"rhythmdeck/model"
	"rhythmdeck/util"
)

const (
	defaultMinOcc      = 2
	defaultMinPoolSize = 20
)

// line kinds, in tie-break priority order.
const (
	kindRow = iota
	kindCol
	kindDiag
)

type bingoLine struct {
	kindRank int
	posRank  int
	rids     []string
}

// bingoLines3x3 enumerates the 8 lines of a 3x3 card with deterministic
// tie-break metadata: rows top->bottom, cols left->right, then main and
// anti diagonal.
func bingoLines3x3(rids []string) ([]bingoLine, error) {
	if len(rids) != 9 {
		return nil, fmt.Errorf("expected 9 rhythm ids for 3x3, got %d", len(rids))
	}
	idx := []struct {
		kind, pos int
		cells     [3]int
	}{
		{kindRow, 0, [3]int{0, 1, 2}},
		{kindRow, 1, [3]int{3, 4, 5}},
		{kindRow, 2, [3]int{6, 7, 8}},
		{kindCol, 0, [3]int{0, 3, 6}},
		{kindCol, 1, [3]int{1, 4, 7}},
		{kindCol, 2, [3]int{2, 5, 8}},
		{kindDiag, 0, [3]int{0, 4, 8}},
		{kindDiag, 1, [3]int{2, 4, 6}},
	}
	res := make([]bingoLine, 0, len(idx))
	for _, l := range idx {
		res = append(res, bingoLine{
			kindRank: l.kind,
			posRank:  l.pos,
			rids:     []string{rids[l.cells[0]], rids[l.cells[1]], rids[l.cells[2]]},
		})
	}
	return res, nil
}

func freqOverCards(cards []model.Card) map[string]int {
	freq := make(map[string]int)
	for _, c := range cards {
		for _, rid := range c.RhythmIDs {
			freq[rid]++
		}
	}
	return freq
}

// enforceBingoGuarantee adds, per card, the minimal missing line to the
// callable set. Tie-break: fewest missing, rows before cols before
// diagonals, top->bottom / left->right / main->anti, then lexicographic
// line content.
func enforceBingoGuarantee(cards []model.Card, callable map[string]bool) error {
	for _, card := range cards {
		lines, err := bingoLines3x3(card.RhythmIDs)
		if err != nil {
			return fmt.Errorf("card %s: %w", card.CardID, err)
		}

		var bestMissing []string
		var bestKey string
		for _, l := range lines {
			var missing []string
			for _, rid := range l.rids {
				if !callable[rid] {
					missing = append(missing, rid)
				}
			}
			sortedLine := append([]string(nil), l.rids...)
			sort.Strings(sortedLine)
			key := fmt.Sprintf("%d|%d|%d|%s", len(missing), l.kindRank, l.posRank, strings.Join(sortedLine, " "))
			if bestKey == "" || key < bestKey {
				bestKey = key
				bestMissing = missing
			}
		}
		for _, rid := range bestMissing {
			callable[rid] = true
		}
	}
	return nil
}

func bingoGuaranteeFailures(cards []model.Card, callable map[string]bool) (int, error) {
	failures := 0
	for _, card := range cards {
		lines, err := bingoLines3x3(card.RhythmIDs)
		if err != nil {
			return 0, err
		}
		ok := false
		for _, l := range lines {
			lineOK := true
			for _, rid := range l.rids {
				if !callable[rid] {
					lineOK = false
					break
				}
			}
			if lineOK {
				ok = true
				break
			}
		}
		if !ok {
			failures++
		}
	}
	return failures, nil
}

func fullCardCandidates(cards []model.Card, callable map[string]bool) int {
	n := 0
	for _, card := range cards {
		if len(card.RhythmIDs) == 0 {
			continue
		}
		all := true
		for _, rid := range card.RhythmIDs {
			if !callable[rid] {
				all = false
				break
			}
		}
		if all {
			n++
		}
	}
	return n
}

// enforceFullCardGuarantee completes the closest card when no card is
// fully callable yet.
func enforceFullCardGuarantee(cards []model.Card, callable map[string]bool) {
	if fullCardCandidates(cards, callable) >= 1 {
		return
	}

	var bestMissing []string
	var bestKey string
	for _, card := range cards {
		var missing []string
		for _, rid := range card.RhythmIDs {
			if !callable[rid] {
				missing = append(missing, rid)
			}
		}
		key := fmt.Sprintf("%04d|%s", len(missing), card.CardID)
		if bestKey == "" || key < bestKey {
			bestKey = key
			bestMissing = missing
		}
	}
	for _, rid := range bestMissing {
		callable[rid] = true
	}
}

// Compute derives one pool per configured attendance interval from the
// ordered deck. Guarantee violations after construction are hard
// errors; they indicate a bug, not bad input.
func Compute(cfg model.PoolsConfig, deckDoc model.DeckDoc) (model.PoolsDoc, error) {
	var out model.PoolsDoc

	cards := deckDoc.Cards
	if len(cards) == 0 {
		return out, fmt.Errorf("deck has no cards")
	}
	nCards := deckDoc.Deck.NCards
	if nCards == 0 {
		nCards = len(cards)
	}

	minOcc := cfg.Pools.CallPool.MinOcc
	if minOcc == 0 {
		minOcc = defaultMinOcc
	}
	minPoolSize := cfg.Pools.CallPool.MinPoolSize
	if minPoolSize == 0 {
		minPoolSize = defaultMinPoolSize
	}

	var poolsOut []model.Pool
	for _, rec := range cfg.Pools.Intervals {
		kEff := util.Min(rec.K, nCards)
		subCards := cards[:kEff]

		// Frequency-threshold core, with a min-size fallback to
		// "appears at all". Correctness comes from the guarantees, not
		// this heuristic.
		freq := freqOverCards(subCards)
		minOccUsed := minOcc
		core := ridsWithFreqAtLeast(freq, minOcc)
		if len(core) < minPoolSize {
			core = ridsWithFreqAtLeast(freq, 1)
			minOccUsed = 1
		}

		callable := make(map[string]bool, len(core))
		for _, rid := range core {
			callable[rid] = true
		}
		coreSize := len(callable)

		if err := enforceBingoGuarantee(subCards, callable); err != nil {
			return out, err
		}
		afterBingo := len(callable)
		enforceFullCardGuarantee(subCards, callable)
		finalSize := len(callable)

		pool := util.GetKeys(callable)
		sort.Strings(pool)

		if len(pool) < 1 {
			return out, fmt.Errorf("pool %s produced an empty callable set", rec.Symbol)
		}

		// Ghost rhythms would let the caller call something nobody can
		// mark.
		onCards := make(map[string]bool)
		for _, c := range subCards {
			for _, rid := range c.RhythmIDs {
				onCards[rid] = true
			}
		}
		var ghosts []string
		for _, rid := range pool {
			if !onCards[rid] {
				ghosts = append(ghosts, rid)
			}
		}
		if len(ghosts) > 0 {
			return out, fmt.Errorf("pool %s has ghost rhythms not on cards 1..%d: %v", rec.Symbol, kEff, ghosts)
		}

		failures, err := bingoGuaranteeFailures(subCards, callable)
		if err != nil {
			return out, err
		}
		candidates := fullCardCandidates(subCards, callable)
		if failures != 0 || candidates < 1 {
			return out, fmt.Errorf(
				"pool %s failed fairness guarantees: bingo failures=%d, full-card candidates=%d",
				rec.Symbol, failures, candidates)
		}

		poolsOut = append(poolsOut, model.Pool{
			PoolID:               rec.PoolID,
			Symbol:               rec.Symbol,
			ChildrenMin:          rec.ChildrenMin,
			ChildrenMax:          rec.ChildrenMax,
			K:                    rec.K,
			KEffective:           kEff,
			MinOccUsed:           minOccUsed,
			CallableRhythmIDs:    pool,
			Guarantees:           model.PoolGuarantees{BingoAllCards: true, FullCardExists: true},
			CoreCallableSize:     coreSize,
			FinalCallableSize:    finalSize,
			AddedForBingoSize:    afterBingo - coreSize,
			AddedForFullCardSize: finalSize - afterBingo,
		})
	}

	out = model.PoolsDoc{
		Version: "v0.2",
		Deck: model.DeckInfo{
			NCards: nCards,
			Rows:   deckDoc.Deck.Rows,
			Cols:   deckDoc.Deck.Cols,
			Seed:   deckDoc.Deck.Seed,
		},
		Config: model.PoolsDocConfig{
			MinOccDefault: minOcc,
			MinPoolSize:   minPoolSize,
		},
		Pools: poolsOut,
	}
	return out, nil
}

func ridsWithFreqAtLeast(freq map[string]int, n int) []string {
	var res []string
	for rid, f := range freq {
		if f >= n {
			res = append(res, rid)
		}
	}
	sort.Strings(res)
	return res
}
