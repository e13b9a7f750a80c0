package mahc

import "fmt"

// FuValue is a fu total.
type FuValue uint32

// Fu is one reason a hand earned fu.
type Fu int

const (
	FuBasePoints Fu = iota
	FuBasePointsChitoi
	FuClosedRon
	FuTsumo
	FuNonSimpleClosedTriplet
	FuSimpleClosedTriplet
	FuNonSimpleOpenTriplet
	FuSimpleOpenTriplet
	FuNonSimpleClosedKan
	FuSimpleClosedKan
	FuNonSimpleOpenKan
	FuSimpleOpenKan
	FuToitsu
	FuSingleWait
)

type fuInfo struct {
	name  string
	value FuValue
}

var fuTable = map[Fu]fuInfo{
	FuBasePoints:             {"BasePoints", 20},
	FuBasePointsChitoi:       {"BasePoints", 25},
	FuClosedRon:              {"ClosedRon", 10},
	FuTsumo:                  {"Tsumo", 2},
	FuNonSimpleClosedTriplet: {"NonSimpleClosedTriplet", 8},
	FuSimpleClosedTriplet:    {"ClosedTriplet", 4},
	FuNonSimpleOpenTriplet:   {"NonSimpleOpenTriplet", 4},
	FuSimpleOpenTriplet:      {"OpenTriplet", 2},
	FuNonSimpleClosedKan:     {"NonSimpleClosedKan", 32},
	FuSimpleClosedKan:        {"ClosedKan", 16},
	FuNonSimpleOpenKan:       {"NonSimpleOpenKan", 16},
	FuSimpleOpenKan:          {"OpenKan", 8},
	FuToitsu:                 {"Toitsu", 2},
	FuSingleWait:             {"SingleWait", 2},
}

// Value returns the points the reason is worth.
func (f Fu) Value() FuValue {
	return fuTable[f].value
}

// String renders the reason as "Name: N".
func (f Fu) String() string {
	info, ok := fuTable[f]
	if !ok {
		return fmt.Sprintf("Fu(%d)", int(f))
	}
	return fmt.Sprintf("%s: %d", info.name, info.value)
}

// TotalFu folds a reason list into a fu total. Seven pairs stays at 25;
// everything else is rounded up to the next multiple of 10.
func TotalFu(fus []Fu) FuValue {
	var total FuValue
	for _, f := range fus {
		if f == FuBasePointsChitoi {
			return f.Value()
		}
		total += f.Value()
	}
	return (total + 9) / 10 * 10
}

// CalculateFu computes the fu of a hand from its groups and the win method.
// It does not know about pinfu; HandFu applies that adjustment.
func CalculateFu(h *Hand, tsumo bool) (FuValue, []Fu) {
	if h.IsSevenPairs() {
		fus := []Fu{FuBasePointsChitoi}
		return TotalFu(fus), fus
	}

	fus := []Fu{FuBasePoints}
	if tsumo {
		fus = append(fus, FuTsumo)
	} else if !h.IsOpen() {
		fus = append(fus, FuClosedRon)
	}

	last := len(h.groups) - 1
	for i, g := range h.groups {
		switch g.Kind {
		case Triplet:
			// A triplet finished off a discard scores as called.
			open := g.Open || (i == last && !tsumo)
			fus = append(fus, tripletFu(g.IsNonSimple(), open))
		case Kan:
			fus = append(fus, kanFu(g.IsNonSimple(), g.Open))
		}
	}

	for _, p := range h.Pairs() {
		if h.IsValueTile(p) {
			fus = append(fus, FuToitsu)
			break
		}
	}

	switch h.winWait() {
	case waitTanki, waitKanchan, waitPenchan:
		fus = append(fus, FuSingleWait)
	}

	return TotalFu(fus), fus
}

func tripletFu(nonSimple, open bool) Fu {
	switch {
	case nonSimple && open:
		return FuNonSimpleOpenTriplet
	case nonSimple:
		return FuNonSimpleClosedTriplet
	case open:
		return FuSimpleOpenTriplet
	}
	return FuSimpleClosedTriplet
}

func kanFu(nonSimple, open bool) Fu {
	switch {
	case nonSimple && open:
		return FuNonSimpleOpenKan
	case nonSimple:
		return FuNonSimpleClosedKan
	case open:
		return FuSimpleOpenKan
	}
	return FuSimpleClosedKan
}

// HandFu is the fu the engine scores with: pinfu tsumo is a flat 20 and
// pinfu ron a flat 30, seven pairs is 25, and anything else is
// CalculateFu.
func HandFu(h *Hand, ctx RoundContext, yaku []Yaku) (FuValue, []Fu) {
	for _, y := range yaku {
		if y != YakuPinfu {
			continue
		}
		fus := []Fu{FuBasePoints}
		if !ctx.Tsumo() {
			fus = append(fus, FuClosedRon)
		}
		return TotalFu(fus), fus
	}
	return CalculateFu(h, ctx.Tsumo())
}
