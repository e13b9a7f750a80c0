// Package render formats scoring results as the text and JSON documents the
// command line, the HTTP API and the desktop calculator print.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"mahc"
)

// TsumoSplit is what a non-dealer collects on self-draw from each payer.
type TsumoSplit struct {
	Dealer    uint32 `json:"dealer"`
	NonDealer uint32 `json:"non-dealer"`
}

type DealerScores struct {
	Ron   uint32 `json:"ron"`
	Tsumo uint32 `json:"tsumo"`
}

type NonDealerScores struct {
	Ron   uint32     `json:"ron"`
	Tsumo TsumoSplit `json:"tsumo"`
}

// Scores is the payment table as it appears in JSON output.
type Scores struct {
	Dealer    DealerScores    `json:"dealer"`
	NonDealer NonDealerScores `json:"non-dealer"`
}

// NewScores lays out a payment. Apply honba before calling.
func NewScores(p mahc.Payment) Scores {
	return Scores{
		Dealer: DealerScores{
			Ron:   p.DealerRon(),
			Tsumo: p.DealerTsumo(),
		},
		NonDealer: NonDealerScores{
			Ron: p.NonDealerRon(),
			Tsumo: TsumoSplit{
				Dealer:    p.NonDealerTsumoToDealer(),
				NonDealer: p.NonDealerTsumoToNonDealer(),
			},
		},
	}
}

// CalcResult is the manual calculator document. Fields are in key order.
type CalcResult struct {
	Fu     mahc.FuValue      `json:"fu"`
	Han    mahc.HanValue     `json:"han"`
	Honba  mahc.HonbaCounter `json:"honba"`
	Scores Scores            `json:"scores"`
}

// NewCalcResult builds the manual calculator document with honba applied.
func NewCalcResult(p mahc.Payment, honba mahc.HonbaCounter, han mahc.HanValue, fu mahc.FuValue) CalcResult {
	return CalcResult{
		Fu:     fu,
		Han:    han,
		Honba:  honba,
		Scores: NewScores(p.WithHonba(honba)),
	}
}

// HandResult is the scored hand document. Fields are in key order.
type HandResult struct {
	Dora       uint32            `json:"dora"`
	Fu         mahc.FuValue      `json:"fu"`
	FuString   []string          `json:"fuString"`
	Han        mahc.HanValue     `json:"han"`
	Honba      mahc.HonbaCounter `json:"honba"`
	Scores     Scores            `json:"scores"`
	YakuString []string          `json:"yakuString"`
}

func NewHandResult(s *mahc.Score) HandResult {
	return HandResult{
		Dora:       s.Dora(),
		Fu:         s.FuValue(),
		FuString:   s.FuLabels(),
		Han:        s.Han(),
		Honba:      s.Honba(),
		Scores:     NewScores(s.PaymentWithHonba()),
		YakuString: s.YakuLabels(),
	}
}

// CalcJSON renders the manual calculator document.
func CalcJSON(p mahc.Payment, honba mahc.HonbaCounter, han mahc.HanValue, fu mahc.FuValue) (string, error) {
	b, err := json.Marshal(NewCalcResult(p, honba, han, fu))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HandJSON renders the scored hand document.
func HandJSON(s *mahc.Score) (string, error) {
	b, err := json.Marshal(NewHandResult(s))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func header(han mahc.HanValue, fu mahc.FuValue, honba mahc.HonbaCounter) string {
	if honba == 0 {
		return fmt.Sprintf("\n%d Han/ %d Fu", han, fu)
	}
	return fmt.Sprintf("\n%d Han/ %d Fu/ %d Honba", han, fu, honba)
}

// CalcText renders the manual calculator result.
func CalcText(p mahc.Payment, honba mahc.HonbaCounter, han mahc.HanValue, fu mahc.FuValue) string {
	p = p.WithHonba(honba)
	return header(han, fu, honba) + fmt.Sprintf("\nDealer: %d (%d)\nnon-dealer: %d (%d/%d)",
		p.DealerRon(),
		p.DealerTsumo(),
		p.NonDealerRon(),
		p.NonDealerTsumoToNonDealer(),
		p.NonDealerTsumoToDealer(),
	)
}

// HandText renders a scored hand. Yakuman results omit the han and fu
// header, the dora line and the fu breakdown.
func HandText(s *mahc.Score) string {
	var b strings.Builder
	yakuman := s.IsYakuman()
	if !yakuman {
		b.WriteString(header(s.Han(), s.FuValue(), s.Honba()))
	}

	p := s.PaymentWithHonba()
	fmt.Fprintf(&b, "\nDealer: %d (%d)\nNon-dealer: %d (%d/%d)",
		p.DealerRon(),
		p.DealerTsumo(),
		p.NonDealerRon(),
		p.NonDealerTsumoToNonDealer(),
		p.NonDealerTsumoToDealer(),
	)

	if !yakuman && s.Dora() != 0 {
		fmt.Fprintf(&b, "\nDora: %d", s.Dora())
	}

	b.WriteString("\nYaku: ")
	for _, label := range s.YakuLabels() {
		b.WriteString("\n  " + label)
	}

	if !yakuman {
		b.WriteString("\nFu: ")
		for _, label := range s.FuLabels() {
			b.WriteString("\n  " + label)
		}
	}
	return b.String()
}
