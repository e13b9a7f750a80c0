package server

import (
	"encoding/json"

	"mahc"
	"mahc/internal/config"
)

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	Tiles        []string `json:"tiles"`
	Win          string   `json:"win"`
	Seat         string   `json:"seat,omitempty"`
	Prevalent    string   `json:"prevalent,omitempty"`
	Dora         uint32   `json:"dora,omitempty"`
	Honba        uint32   `json:"honba,omitempty"`
	Tsumo        bool     `json:"tsumo,omitempty"`
	Riichi       bool     `json:"riichi,omitempty"`
	DoubleRiichi bool     `json:"doubleRiichi,omitempty"`
	Ippatsu      bool     `json:"ippatsu,omitempty"`
	Haitei       bool     `json:"haitei,omitempty"`
	Rinshan      bool     `json:"rinshan,omitempty"`
	Chankan      bool     `json:"chankan,omitempty"`
	Tenhou       bool     `json:"tenhou,omitempty"`
}

// withDefaults fills in the winds the caller left out.
func (r ScoreRequest) withDefaults(d config.DefaultsConf) ScoreRequest {
	if r.Seat == "" {
		r.Seat = d.Seat
	}
	if r.Prevalent == "" {
		r.Prevalent = d.Prevalent
	}
	return r
}

// cacheKey is the canonical encoding of the request. Scoring is pure, so
// equal keys always produce equal results.
func (r ScoreRequest) cacheKey() string {
	b, _ := json.Marshal(r)
	return "score:" + string(b)
}

// Request converts the body into an engine request.
func (r ScoreRequest) Request() (mahc.Request, error) {
	if len(r.Tiles) == 0 {
		return mahc.Request{}, mahc.ErrNoHandTiles
	}
	if r.Win == "" {
		return mahc.Request{}, mahc.ErrNoWinTile
	}
	ctx, err := mahc.ContextFlags{
		Tsumo:        r.Tsumo,
		Riichi:       r.Riichi,
		DoubleRiichi: r.DoubleRiichi,
		Ippatsu:      r.Ippatsu,
		Haitei:       r.Haitei,
		Rinshan:      r.Rinshan,
		Chankan:      r.Chankan,
		Tenhou:       r.Tenhou,
	}.Context()
	if err != nil {
		return mahc.Request{}, err
	}
	return mahc.Request{
		Tiles:     r.Tiles,
		Win:       r.Win,
		Seat:      r.Seat,
		Prevalent: r.Prevalent,
		Dora:      r.Dora,
		Honba:     mahc.HonbaCounter(r.Honba),
		Context:   ctx,
	}, nil
}

// CalcRequest is the body of POST /v1/calc.
type CalcRequest struct {
	Han   uint32 `json:"han"`
	Fu    uint32 `json:"fu"`
	Honba uint32 `json:"honba"`
}

func (r CalcRequest) cacheKey() string {
	b, _ := json.Marshal(r)
	return "calc:" + string(b)
}
