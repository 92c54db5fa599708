package model

type GenerateRequestBody struct {
	Profile string `json:"profile"`
	Count   int    `json:"count"`
	Seed    int64  `json:"seed"`
}

type GenerateResponse struct {
	Profile string   `json:"profile"`
	Seed    int64    `json:"seed"`
	Rhythms []string `json:"rhythms"`
}

type ValidateRequestBody struct {
	Profile string   `json:"profile"`
	Lines   []string `json:"lines"`
}

type LineResult struct {
	Line   int    `json:"line"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
	Index  int    `json:"index,omitempty"`
}

type ValidateResponse struct {
	Results []LineResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
