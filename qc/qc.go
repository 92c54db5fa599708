// Package qc computes deck diagnostics per attendance interval:
// coverage, frequency spread, duplicate cards, pairwise overlap, and
// whether the fairness guarantees actually hold for the published
// pools.
package qc

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"rhythmdeck/model"
	"rhythmdeck/util"
)

func quantiles(vals []int) model.Quantiles {
	if len(vals) == 0 {
		return model.Quantiles{}
	}
	v := append([]int(nil), vals...)
	sort.Ints(v)
	pick := func(p float64) float64 {
		idx := int(math.Round(p * float64(len(v)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx > len(v)-1 {
			idx = len(v) - 1
		}
		return float64(v[idx])
	}
	return model.Quantiles{
		Min:    float64(v[0]),
		P10:    pick(0.10),
		Median: pick(0.50),
		Max:    float64(v[len(v)-1]),
	}
}

func overlapHist(sets []map[string]bool) (hist map[string]int, maxOv int, mean float64, pairCount int) {
	hist = make(map[string]int)
	n := len(sets)
	if n < 2 {
		return hist, 0, 0, 0
	}
	var total int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var ov int
			for r := range sets[i] {
				if sets[j][r] {
					ov++
				}
			}
			if ov > maxOv {
				maxOv = ov
			}
			hist[strconv.Itoa(ov)]++
			total += ov
			pairCount++
		}
	}
	mean = float64(total) / float64(pairCount)
	return hist, maxOv, mean, pairCount
}

func cardSet(c model.Card) map[string]bool {
	s := make(map[string]bool, len(c.RhythmIDs))
	for _, rid := range c.RhythmIDs {
		s[rid] = true
	}
	return s
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if !b[r] {
			return false
		}
	}
	return true
}

// Compute builds the QC document. poolsDoc may be nil when pools have
// not been computed yet; pool-derived columns are zero-valued then.
func Compute(cfg model.PoolsConfig, deckDoc model.DeckDoc, poolsDoc *model.PoolsDoc) (model.QCDoc, error) {
	var out model.QCDoc

	cards := deckDoc.Cards
	if len(cards) == 0 {
		return out, fmt.Errorf("deck has no cards")
	}
	nCards := deckDoc.Deck.NCards
	if nCards == 0 {
		nCards = len(cards)
	}
	cardSize := deckDoc.Deck.CardSize
	if cardSize == 0 {
		cardSize = 9
	}

	poolsByID := make(map[string]model.Pool)
	if poolsDoc != nil {
		for _, p := range poolsDoc.Pools {
			poolsByID[p.PoolID] = p
		}
	}

	// Full-deck exact duplicates.
	seen := make(map[string]bool)
	dupFull := 0
	for _, c := range cards {
		set := cardSet(c)
		key := setFingerprint(set)
		if seen[key] {
			dupFull++
		}
		seen[key] = true
	}

	var rows []model.QCRow
	for _, rec := range cfg.Pools.Intervals {
		kEff := util.Min(rec.K, nCards)
		symbol := rec.Symbol
		p, havePool := poolsByID[rec.PoolID]
		if havePool {
			kEff = p.KEffective
			symbol = p.Symbol
		}

		subCards := cards[:kEff]
		sets := make([]map[string]bool, len(subCards))
		union := make(map[string]bool)
		for i, c := range subCards {
			sets[i] = cardSet(c)
			for r := range sets[i] {
				union[r] = true
			}
		}

		freq := make(map[string]int)
		for _, s := range sets {
			for r := range s {
				freq[r]++
			}
		}
		var freqVals []int
		for _, f := range freq {
			freqVals = append(freqVals, f)
		}
		q := quantiles(freqVals)

		row := model.QCRow{
			K:                kEff,
			ChildrenInterval: fmt.Sprintf("%d–%d", rec.ChildrenMin, rec.ChildrenMax),
			Symbol:           symbol,
			UnionSize:        len(union),
			FreqMin:          q.Min,
			FreqP10:          q.P10,
			FreqMedian:       q.Median,
			FreqMax:          q.Max,
		}

		if havePool {
			callable := make(map[string]bool, len(p.CallableRhythmIDs))
			for _, rid := range p.CallableRhythmIDs {
				callable[rid] = true
			}
			row.CallPoolSize = len(p.CallableRhythmIDs)
			row.MinOccUsed = p.MinOccUsed
			failures := bingoFailures(subCards, callable)
			candidates := fullCardCandidates(subCards, callable)
			row.CardsWithNoBingoLine = failures
			row.FullCardCandidates = candidates
			row.BingoGuaranteeOK = failures == 0
			row.FullCardPossibleOK = candidates >= 1
			row.CoreCallableSize = p.CoreCallableSize
			row.FinalCallableSize = p.FinalCallableSize
			row.AddedForBingoSize = p.AddedForBingoSize
			row.AddedForFullCardSize = p.AddedForFullCardSize
		}

		dupPairs := 0
		for i := 0; i < len(sets); i++ {
			for j := i + 1; j < len(sets); j++ {
				if setsEqual(sets[i], sets[j]) {
					dupPairs++
				}
			}
		}
		row.DuplicatePairs = dupPairs

		hist, maxOv, meanOv, pairCount := overlapHist(sets)
		row.OverlapHist = hist
		row.MaxOverlap = maxOv
		row.MeanOverlap = meanOv
		row.PairCount = pairCount

		rows = append(rows, row)
	}

	out = model.QCDoc{
		Version: "v0.2",
		Deck: model.DeckInfo{
			NCards:   nCards,
			CardSize: cardSize,
			Rows:     deckDoc.Deck.Rows,
			Cols:     deckDoc.Deck.Cols,
			Seed:     deckDoc.Deck.Seed,
		},
		DuplicatePairsFullDeck: dupFull,
		Rows:                   rows,
	}
	return out, nil
}

func setFingerprint(set map[string]bool) string {
	keys := util.GetKeys(set)
	sort.Strings(keys)
	var res string
	for i, k := range keys {
		if i > 0 {
			res += " "
		}
		res += k
	}
	return res
}

func bingoFailures(cards []model.Card, callable map[string]bool) int {
	lines := [][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	failures := 0
	for _, card := range cards {
		if len(card.RhythmIDs) != 9 {
			failures++
			continue
		}
		ok := false
		for _, l := range lines {
			if callable[card.RhythmIDs[l[0]]] && callable[card.RhythmIDs[l[1]]] && callable[card.RhythmIDs[l[2]]] {
				ok = true
				break
			}
		}
		if !ok {
			failures++
		}
	}
	return failures
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

var csvColumns = []string{
	"k", "children_interval", "symbol", "union_size",
	"call_pool_size", "min_occ_used",
	"bingo_guarantee_ok", "full_card_possible_ok",
	"cards_with_no_bingo_line", "full_card_candidates",
	"core_callable_size", "final_callable_size",
	"added_for_bingo_size", "added_for_full_card_size",
	"duplicate_pairs", "max_overlap", "mean_overlap",
}

// WriteCSV emits the flat CSV companion of the QC document.
func WriteCSV(path string, doc model.QCDoc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return err
	}
	for _, r := range doc.Rows {
		rec := []string{
			strconv.Itoa(r.K),
			r.ChildrenInterval,
			r.Symbol,
			strconv.Itoa(r.UnionSize),
			strconv.Itoa(r.CallPoolSize),
			strconv.Itoa(r.MinOccUsed),
			strconv.FormatBool(r.BingoGuaranteeOK),
			strconv.FormatBool(r.FullCardPossibleOK),
			strconv.Itoa(r.CardsWithNoBingoLine),
			strconv.Itoa(r.FullCardCandidates),
			strconv.Itoa(r.CoreCallableSize),
			strconv.Itoa(r.FinalCallableSize),
			strconv.Itoa(r.AddedForBingoSize),
			strconv.Itoa(r.AddedForFullCardSize),
			strconv.Itoa(r.DuplicatePairs),
			strconv.Itoa(r.MaxOverlap),
			strconv.FormatFloat(r.MeanOverlap, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
