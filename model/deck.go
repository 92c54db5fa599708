package model

// Card is one student bingo card: a fixed grid of rhythm IDs, stored
// row-major.
type Card struct {
	CardID string `json:"card_id"`
	// CardIDRaw keeps the pre-ordering id for traceability. Not used by
	// any downstream artifact.
	CardIDRaw string   `json:"card_id_raw,omitempty"`
	RhythmIDs []string `json:"rhythm_ids"`
}

type DeckInfo struct {
	NCards   int   `json:"n_cards"`
	Seed     int64 `json:"seed"`
	Rows     int   `json:"rows"`
	Cols     int   `json:"cols"`
	CardSize int   `json:"card_size,omitempty"`
}

type RhythmUniverse struct {
	BankPath string `json:"bank_path"`
	Count    int    `json:"count"`
	IDScheme string `json:"id_scheme"`
}

type OrderingInfo struct {
	Method   string `json:"method"`
	Score    string `json:"score"`
	TieBreak string `json:"tie_break"`
	Seed     int64  `json:"seed"`
}

// DeckDoc is the shape of deck_raw.json and deck_order.json. The raw
// deck has no Ordering section; the ordered deck carries one.
type DeckDoc struct {
	Version  string         `json:"version"`
	BuildID  string         `json:"build_id"`
	Deck     DeckInfo       `json:"deck"`
	Universe RhythmUniverse `json:"rhythm_universe"`
	Ordering *OrderingInfo  `json:"ordering,omitempty"`
	Cards    []Card         `json:"cards"`
}
