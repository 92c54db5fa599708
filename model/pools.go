package model

// PoolInterval is one attendance interval from the pools config: use the
// first K ordered cards when between ChildrenMin and ChildrenMax students
// show up.
type PoolInterval struct {
	PoolID      string `json:"pool_id"`
	Symbol      string `json:"symbol"`
	ChildrenMin int    `json:"children_min"`
	ChildrenMax int    `json:"children_max"`
	K           int    `json:"k"`
}

type CallPoolSettings struct {
	MinOcc      int `json:"min_occ"`
	MinPoolSize int `json:"min_pool_size"`
}

type PoolsSettings struct {
	Intervals []PoolInterval   `json:"intervals"`
	CallPool  CallPoolSettings `json:"call_pool"`
}

// PoolsConfig is the shape of config_pools.json.
type PoolsConfig struct {
	Deck  DeckInfo      `json:"deck"`
	Pools PoolsSettings `json:"pools"`
}

type PoolGuarantees struct {
	BingoAllCards  bool `json:"bingo_all_cards"`
	FullCardExists bool `json:"full_card_exists"`
}

// Pool is one computed callable pool.
type Pool struct {
	PoolID               string         `json:"pool_id"`
	Symbol               string         `json:"symbol"`
	ChildrenMin          int            `json:"children_min"`
	ChildrenMax          int            `json:"children_max"`
	K                    int            `json:"k"`
	KEffective           int            `json:"k_effective"`
	MinOccUsed           int            `json:"min_occ_used"`
	CallableRhythmIDs    []string       `json:"callable_rhythm_ids"`
	Guarantees           PoolGuarantees `json:"guarantees"`
	CoreCallableSize     int            `json:"core_callable_size"`
	FinalCallableSize    int            `json:"final_callable_size"`
	AddedForBingoSize    int            `json:"added_for_bingo_size"`
	AddedForFullCardSize int            `json:"added_for_full_card_size"`
}

type PoolsDocConfig struct {
	MinOccDefault int `json:"min_occ_default"`
	MinPoolSize   int `json:"min_pool_size"`
}

// PoolsDoc is the shape of pools.json.
type PoolsDoc struct {
	Version string         `json:"version"`
	Deck    DeckInfo       `json:"deck"`
	Config  PoolsDocConfig `json:"config"`
	Pools   []Pool         `json:"pools"`
}
