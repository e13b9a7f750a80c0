package mahc

// ==========================================================
// Yakuman Checks
// ==========================================================

func checkDaisangen(h *Hand, _ RoundContext) bool {
	return countDragonMelds(h) == 3
}

// Suuankou needs four concealed sets with the win completing one of them by
// self-draw; the pair-wait form is its own entry.
func checkSuuankou(h *Hand, ctx RoundContext) bool {
	return h.closedMeldCount(ctx.Tsumo()) == 4 && h.WinningGroup().IsMeld()
}

func checkSuuankouTanki(h *Hand, ctx RoundContext) bool {
	return h.closedMeldCount(ctx.Tsumo()) == 4 && h.WinningGroup().Kind == Pair
}

func checkChinroutou(h *Hand, _ RoundContext) bool {
	if len(h.Sequences()) > 0 || len(h.Singles()) > 0 {
		return false
	}
	for _, g := range h.groups {
		if g.IsHonor() || !g.Terminal {
			return false
		}
	}
	return true
}

func checkRyuuiisou(h *Hand, _ RoundContext) bool {
	for _, t := range h.Tiles() {
		if !greenTiles[t] {
			return false
		}
	}
	return true
}

// nineGatesBase is the 1112345678999 pattern, indexed by face value - 1.
var nineGatesBase = [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}

// nineGates reports whether the hand is nine gates, and whether the tiles
// without the winning tile form the pure base pattern.
func nineGates(h *Hand) (ok, pure bool) {
	if h.IsOpen() || !h.IsStandard() || len(h.Kans()) > 0 {
		return false, false
	}
	m := mixOf(h)
	if m.honors || len(m.numbered) != 1 {
		return false, false
	}

	var counts [9]int
	for _, t := range h.Tiles() {
		counts[t.Value-'1']++
	}
	for i, need := range nineGatesBase {
		if counts[i] < need {
			return false, false
		}
	}

	if h.win.IsHonor() || !m.numbered[h.win.Suit] {
		return true, false
	}
	counts[h.win.Value-'1']--
	return true, counts == nineGatesBase
}

func checkChuuren(h *Hand, _ RoundContext) bool {
	ok, pure := nineGates(h)
	return ok && !pure
}

func checkChuuren9(h *Hand, _ RoundContext) bool {
	ok, pure := nineGates(h)
	return ok && pure
}

func allHonors(h *Hand) bool {
	for _, g := range h.groups {
		if !g.IsHonor() {
			return false
		}
	}
	return true
}

func checkTsuuiisou(h *Hand, _ RoundContext) bool {
	return h.IsStandard() && allHonors(h)
}

func checkDaichiishin(h *Hand, _ RoundContext) bool {
	return h.IsSevenPairs() && allHonors(h)
}

func checkSuukantsu(h *Hand, _ RoundContext) bool {
	return len(h.Kans()) == 4
}

func countWindMelds(h *Hand) int {
	n := 0
	for _, g := range h.Melds() {
		if g.Suit == Wind {
			n++
		}
	}
	return n
}

func checkShousuushii(h *Hand, _ RoundContext) bool {
	return h.IsStandard() && countWindMelds(h) == 3 && h.Pairs()[0].Suit == Wind
}

func checkDaisuushii(h *Hand, _ RoundContext) bool {
	return countWindMelds(h) == 4
}

// kokushiWinOnPair reports whether the winning tile matches the pair, which
// makes the wait thirteen-sided.
func kokushiWinOnPair(h *Hand) bool {
	return h.Pairs()[0].SameTile(h.win)
}

func checkKokushi(h *Hand, _ RoundContext) bool {
	return h.IsThirteenOrphans() && !kokushiWinOnPair(h)
}

func checkKokushi13(h *Hand, _ RoundContext) bool {
	return h.IsThirteenOrphans() && kokushiWinOnPair(h)
}

func isFirstDraw(h *Hand, ctx RoundContext) bool {
	return ctx.Tenhou() && ctx.Tsumo() && !h.IsOpen()
}

func checkTenhou(h *Hand, ctx RoundContext) bool {
	return isFirstDraw(h, ctx) && h.seat.Value == East
}

func checkChiihou(h *Hand, ctx RoundContext) bool {
	return isFirstDraw(h, ctx) && h.seat.Value != East
}
