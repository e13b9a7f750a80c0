package mahc

import "fmt"

// yakumanBasePoints is the base of a single yakuman.
const yakumanBasePoints = 8000

// Calculate returns the payment for a han and fu pair. han is checked
// before fu.
func Calculate(han HanValue, fu FuValue) (Payment, error) {
	if han == 0 {
		return Payment{}, ErrNoHan
	}
	if fu == 0 {
		return Payment{}, ErrNoFu
	}

	if limit, ok := GetLimitHand(han, fu); ok {
		return limit.Payment(), nil
	}

	// Non-limit hands have at most 4 han, so the shift stays small.
	base := uint64(fu) << (2 + han)
	if base > uint64(Mangan.BasePoints()) {
		return Mangan.Payment(), nil
	}
	return NewPayment(uint32(base)), nil
}

// CalculateYakuman returns the payment for the yakuman in the list, one
// unit each.
func CalculateYakuman(yaku []Yaku) (Payment, error) {
	n := YakumanCount(yaku)
	if n == 0 {
		return Payment{}, ErrNoYaku
	}
	return NewPayment(yakumanBasePoints * uint32(n)), nil
}

// GetHandScore scores a complete hand.
func GetHandScore(tiles []string, win string, dora uint32, seat, prevalent string, ctx RoundContext, honba HonbaCounter) (*Score, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	h, err := NewHand(tiles, win, seat, prevalent)
	if err != nil {
		return nil, err
	}
	if ctx.Rinshan() && len(h.Kans()) == 0 {
		return nil, ErrRinshanKanWithoutKan
	}
	if ctx.Riichi().Declared() && h.IsOpen() {
		return nil, ErrRiichiOpenHand
	}

	yakuHan, yaku := DetectYaku(h, ctx)
	if yakuHan == 0 {
		return nil, ErrNoYaku
	}

	fuValue, fus := HandFu(h, ctx, yaku)

	s := &Score{
		yaku:    yaku,
		fu:      fus,
		fuValue: fuValue,
		dora:    dora,
		honba:   honba,
		open:    h.IsOpen(),
	}

	if yaku[0].IsYakuman() {
		s.han = yakuHan
		s.payment, err = CalculateYakuman(yaku)
	} else {
		s.han = yakuHan + HanValue(dora)
		s.payment, err = Calculate(s.han, fuValue)
	}
	if err != nil {
		return nil, fmt.Errorf("payment: %w", err)
	}
	return s, nil
}

// Request bundles everything needed to score a hand.
type Request struct {
	Tiles     []string
	Win       string
	Seat      string
	Prevalent string
	Dora      uint32
	Honba     HonbaCounter
	Context   RoundContext
}

// Score runs GetHandScore on the request.
func (r Request) Score() (*Score, error) {
	if len(r.Tiles) == 0 {
		return nil, ErrNoHandTiles
	}
	if r.Win == "" {
		return nil, ErrNoWinTile
	}
	return GetHandScore(r.Tiles, r.Win, r.Dora, r.Seat, r.Prevalent, r.Context, r.Honba)
}
