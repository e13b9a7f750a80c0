package mahc

import "fmt"

// ==========================================================
// Hand Shape Checks
// ==========================================================

// checkShape accepts the three winning shapes: four sets plus a pair, seven
// pairs, and thirteen orphans.
func checkShape(groups []TileGroup) error {
	var sets, pairs, singles int
	for _, g := range groups {
		switch g.Kind {
		case Sequence, Triplet, Kan:
			sets++
		case Pair:
			pairs++
		case None:
			singles++
		}
	}

	switch {
	case singles == 0 && sets == 4 && pairs == 1:
		return nil
	case singles == 0 && sets == 0 && pairs == 7:
		if distinctPairs(groups) {
			return nil
		}
		return fmt.Errorf("%w: seven pairs repeats a pair", ErrInvalidShape)
	case singles == 12 && sets == 0 && pairs == 1:
		if isThirteenOrphans(groups) {
			return nil
		}
	}
	return fmt.Errorf("%w: %d sets, %d pairs, %d singles", ErrInvalidShape, sets, pairs, singles)
}

// distinctPairs reports whether no two groups hold the same tile. Four of a
// kind does not make two of the seven pairs.
func distinctPairs(groups []TileGroup) bool {
	seen := make(map[Tile]bool, len(groups))
	for _, g := range groups {
		if seen[g.Tile()] {
			return false
		}
		seen[g.Tile()] = true
	}
	return true
}

// isThirteenOrphans checks that the twelve singles and the pair cover all
// thirteen terminal and honor tiles, once each apart from the pair, with
// nothing called.
func isThirteenOrphans(groups []TileGroup) bool {
	seen := make(map[Tile]bool, 13)
	for _, g := range groups {
		t := g.Tile()
		if g.Open || !t.IsTerminalOrHonor() || seen[t] {
			return false
		}
		seen[t] = true
	}
	return len(seen) == 13
}

// ==========================================================
// Wait Shape Checks
// ==========================================================

// wait is the shape the winning tile completed.
type wait int

const (
	waitRyanmen wait = iota // open two-sided
	waitKanchan             // closed middle
	waitPenchan             // edge, 12 for 3 or 89 for 7
	waitTanki               // pair
	waitShanpon             // one of two pairs became a triplet
	waitOther
)

// winWait classifies how the winning tile completed the winning group.
func (h *Hand) winWait() wait {
	g := h.WinningGroup()
	win := h.win
	if !groupHolds(g, win.Tile()) {
		return waitOther
	}
	switch g.Kind {
	case Pair:
		return waitTanki
	case Triplet, Kan:
		return waitShanpon
	case Sequence:
		switch {
		case win.Value == g.Value+1:
			return waitKanchan
		case g.Value == '1' && win.Value == '3':
			return waitPenchan
		case g.Value == '7' && win.Value == '7':
			return waitPenchan
		}
		return waitRyanmen
	}
	return waitOther
}

// isTwoSided reports whether the hand won on an open two-sided wait.
func (h *Hand) isTwoSided() bool {
	return h.winWait() == waitRyanmen
}
