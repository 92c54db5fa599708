package deck

import (
	"fmt"
	"math/rand"
	"sort"

	"rhythmdeck/model"
)

// Greedy ordering weights: favor cards that introduce new rhythms,
// nudge toward rhythms already seen often, and punish heavy overlap
// with any single already-selected card.
const (
	wNew     = 1000
	wShared  = 1
	wMaxOver = 50
)

type candidate struct {
	origIndex int
	card      model.Card
	set       map[string]bool
}

func scoreCandidate(c candidate, selected []map[string]bool, union map[string]bool, freq map[string]int) (score, newCount, maxOverlap int) {
	for r := range c.set {
		if !union[r] {
			newCount++
		}
	}
	for _, s := range selected {
		var ov int
		for r := range c.set {
			if s[r] {
				ov++
			}
		}
		if ov > maxOverlap {
			maxOverlap = ov
		}
	}
	var sharedGain int
	for r := range c.set {
		if union[r] {
			sharedGain += freq[r]
		}
	}
	score = wNew*newCount + wShared*sharedGain - wMaxOver*maxOverlap
	return score, newCount, maxOverlap
}

// Order reorders a raw deck deterministically and renumbers cards so
// C001..C00N is the ordered sequence; pools use "cards 1..k" semantics,
// so the printed numbering has to match the ordered prefix. Ties go to
// the lowest original index, exact ties to a seeded shuffle.
func Order(doc model.DeckDoc, seed int64) (model.DeckDoc, error) {
	if len(doc.Cards) == 0 {
		return doc, fmt.Errorf("no cards to order")
	}

	rng := rand.New(rand.NewSource(seed))

	remaining := make([]candidate, len(doc.Cards))
	for i, c := range doc.Cards {
		set := make(map[string]bool, len(c.RhythmIDs))
		for _, r := range c.RhythmIDs {
			set[r] = true
		}
		remaining[i] = candidate{origIndex: i, card: c, set: set}
	}

	var selected []model.Card
	var selectedSets []map[string]bool
	union := make(map[string]bool)
	freq := make(map[string]int)

	for len(remaining) > 0 {
		type scored struct {
			cand                        candidate
			score, newCount, maxOverlap int
		}
		all := make([]scored, len(remaining))
		for i, c := range remaining {
			s, n, m := scoreCandidate(c, selectedSets, union, freq)
			all[i] = scored{cand: c, score: s, newCount: n, maxOverlap: m}
		}

		sort.Slice(all, func(i, j int) bool {
			if all[i].score != all[j].score {
				return all[i].score > all[j].score
			}
			if all[i].newCount != all[j].newCount {
				return all[i].newCount > all[j].newCount
			}
			if all[i].maxOverlap != all[j].maxOverlap {
				return all[i].maxOverlap < all[j].maxOverlap
			}
			return all[i].cand.origIndex < all[j].cand.origIndex
		})

		best := all[0]
		var ties []candidate
		for _, s := range all {
			if s.score == best.score && s.newCount == best.newCount && s.maxOverlap == best.maxOverlap {
				ties = append(ties, s.cand)
			}
		}

		chosen := ties[0]
		if len(ties) > 1 {
			sort.Slice(ties, func(i, j int) bool { return ties[i].origIndex < ties[j].origIndex })
			rng.Shuffle(len(ties), func(i, j int) { ties[i], ties[j] = ties[j], ties[i] })
			chosen = ties[0]
		}

		selected = append(selected, model.Card{
			CardID:    fmt.Sprintf("C%03d", len(selected)+1),
			CardIDRaw: chosen.card.CardID,
			RhythmIDs: chosen.card.RhythmIDs,
		})
		selectedSets = append(selectedSets, chosen.set)
		for r := range chosen.set {
			union[r] = true
			freq[r]++
		}

		next := remaining[:0]
		for _, c := range remaining {
			if c.origIndex != chosen.origIndex {
				next = append(next, c)
			}
		}
		remaining = next
	}

	out := doc
	out.Ordering = &model.OrderingInfo{
		Method:   "greedy",
		Score:    "1000*new_count + shared_gain - 50*max_overlap",
		TieBreak: "orig_index then seeded RNG",
		Seed:     seed,
	}
	out.Cards = selected
	return out, nil
}
