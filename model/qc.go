package model

type Quantiles struct {
	Min    float64 `json:"min"`
	P10    float64 `json:"p10"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// QCRow is the per-pool diagnostics row in deck_qc.json / deck_qc.csv.
type QCRow struct {
	K                    int            `json:"k"`
	ChildrenInterval     string         `json:"children_interval"`
	Symbol               string         `json:"symbol"`
	UnionSize            int            `json:"union_size"`
	FreqMin              float64        `json:"freq_min"`
	FreqP10              float64        `json:"freq_p10"`
	FreqMedian           float64        `json:"freq_median"`
	FreqMax              float64        `json:"freq_max"`
	CallPoolSize         int            `json:"call_pool_size"`
	MinOccUsed           int            `json:"min_occ_used"`
	BingoGuaranteeOK     bool           `json:"bingo_guarantee_ok"`
	FullCardPossibleOK   bool           `json:"full_card_possible_ok"`
	CardsWithNoBingoLine int            `json:"cards_with_no_bingo_line"`
	FullCardCandidates   int            `json:"full_card_candidates"`
	CoreCallableSize     int            `json:"core_callable_size"`
	FinalCallableSize    int            `json:"final_callable_size"`
	AddedForBingoSize    int            `json:"added_for_bingo_size"`
	AddedForFullCardSize int            `json:"added_for_full_card_size"`
	DuplicatePairs       int            `json:"duplicate_pairs"`
	MaxOverlap           int            `json:"max_overlap"`
	MeanOverlap          float64        `json:"mean_overlap"`
	OverlapHist          map[string]int `json:"overlap_hist"`
	PairCount            int            `json:"pair_count"`
}

// QCDoc is the shape of deck_qc.json.
type QCDoc struct {
	Version                string   `json:"version"`
	Deck                   DeckInfo `json:"deck"`
	DuplicatePairsFullDeck int      `json:"duplicate_pairs_full_deck"`
	Rows                   []QCRow  `json:"rows"`
}
