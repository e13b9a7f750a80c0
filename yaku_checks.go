package mahc

// ==========================================================
// Ordinary Yaku Checks
// ==========================================================

// checkFunc reports whether a pattern is present in the hand.
type checkFunc func(h *Hand, ctx RoundContext) bool

func checkIppatsu(h *Hand, ctx RoundContext) bool {
	return ctx.Ippatsu() && !h.IsOpen()
}

func checkHaitei(_ *Hand, ctx RoundContext) bool { return ctx.Haitei() }

func checkRinshan(_ *Hand, ctx RoundContext) bool { return ctx.Rinshan() }

func checkChankan(_ *Hand, ctx RoundContext) bool { return ctx.Chankan() }

// checkTanyao: no terminal or honor in any group. Open tanyao is allowed.
func checkTanyao(h *Hand, _ RoundContext) bool {
	for _, g := range h.groups {
		if g.IsNonSimple() {
			return false
		}
	}
	return true
}

// identicalSequencePairs counts how many pairs of identical sequences the
// hand holds. Four copies of one run count as two.
func identicalSequencePairs(h *Hand) int {
	counts := make(map[Tile]int)
	for _, s := range h.Sequences() {
		counts[s.Tile()]++
	}
	pairs := 0
	for _, n := range counts {
		pairs += n / 2
	}
	return pairs
}

func checkIipeikou(h *Hand, _ RoundContext) bool {
	return !h.IsOpen() && h.IsStandard() && identicalSequencePairs(h) == 1
}

func checkRyanpeikou(h *Hand, _ RoundContext) bool {
	return !h.IsOpen() && h.IsStandard() && identicalSequencePairs(h) == 2
}

func checkToitoi(h *Hand, _ RoundContext) bool {
	return len(h.Melds()) == 4
}

// hasInAllSuits reports whether some value appears among the groups in all
// three numbered suits.
func hasInAllSuits(groups []TileGroup) bool {
	bySuit := make(map[byte]map[Suit]bool)
	for _, g := range groups {
		if g.IsHonor() {
			continue
		}
		if bySuit[g.Value] == nil {
			bySuit[g.Value] = make(map[Suit]bool)
		}
		bySuit[g.Value][g.Suit] = true
	}
	for _, suits := range bySuit {
		if len(suits) == len(NumberedSuits) {
			return true
		}
	}
	return false
}

func checkSanshokuDoujun(h *Hand, _ RoundContext) bool {
	return hasInAllSuits(h.Sequences())
}

func checkSanshokuDoukou(h *Hand, _ RoundContext) bool {
	return hasInAllSuits(h.Melds())
}

func checkSanankou(h *Hand, ctx RoundContext) bool {
	return h.closedMeldCount(ctx.Tsumo()) == 3
}

// suitMix describes which suits appear across the groups.
type suitMix struct {
	numbered map[Suit]bool
	honors   bool
}

func mixOf(h *Hand) suitMix {
	m := suitMix{numbered: make(map[Suit]bool)}
	for _, g := range h.groups {
		if g.IsHonor() {
			m.honors = true
			continue
		}
		m.numbered[g.Suit] = true
	}
	return m
}

func checkHonitsu(h *Hand, _ RoundContext) bool {
	m := mixOf(h)
	return len(m.numbered) == 1 && m.honors
}

func checkChinitsu(h *Hand, _ RoundContext) bool {
	m := mixOf(h)
	return len(m.numbered) == 1 && !m.honors
}

// countDragonMelds counts dragon triplets and kans.
func countDragonMelds(h *Hand) int {
	n := 0
	for _, g := range h.Melds() {
		if g.Suit == Dragon {
			n++
		}
	}
	return n
}

func checkShousangen(h *Hand, _ RoundContext) bool {
	if !h.IsStandard() {
		return false
	}
	return h.Pairs()[0].Suit == Dragon && countDragonMelds(h) == 2
}

// outsideHand reports whether every group touches a terminal or honor and
// at least one group is a sequence. It returns whether any honor was seen.
func outsideHand(h *Hand) (ok, honors bool) {
	if len(h.Sequences()) == 0 {
		return false, false
	}
	for _, g := range h.groups {
		if !g.IsNonSimple() {
			return false, false
		}
		if g.IsHonor() {
			honors = true
		}
	}
	return true, honors
}

func checkJunchan(h *Hand, _ RoundContext) bool {
	ok, honors := outsideHand(h)
	return ok && !honors
}

func checkChanta(h *Hand, _ RoundContext) bool {
	ok, honors := outsideHand(h)
	return ok && honors
}

func checkHonroutou(h *Hand, _ RoundContext) bool {
	if len(h.Sequences()) > 0 {
		return false
	}
	var terminals, honors bool
	for _, g := range h.groups {
		switch {
		case g.IsHonor():
			honors = true
		case g.Terminal:
			terminals = true
		default:
			return false
		}
	}
	return terminals && honors
}

func checkSankantsu(h *Hand, _ RoundContext) bool {
	return len(h.Kans()) == 3
}

func checkIttsuu(h *Hand, _ RoundContext) bool {
	starts := make(map[Suit]map[byte]bool)
	for _, s := range h.Sequences() {
		if starts[s.Suit] == nil {
			starts[s.Suit] = make(map[byte]bool)
		}
		starts[s.Suit][s.Value] = true
	}
	for _, v := range starts {
		if v['1'] && v['4'] && v['7'] {
			return true
		}
	}
	return false
}

func checkChiitoitsu(h *Hand, _ RoundContext) bool {
	return h.IsSevenPairs() && !h.IsOpen()
}

func checkMenzenTsumo(h *Hand, ctx RoundContext) bool {
	return ctx.Tsumo() && !h.IsOpen()
}

// checkPinfu: concealed, four sequences, a pair that scores no fu, and a
// two-sided wait on a sequence.
func checkPinfu(h *Hand, _ RoundContext) bool {
	if h.IsOpen() || len(h.Sequences()) != 4 || len(h.Pairs()) != 1 {
		return false
	}
	if h.IsValueTile(h.Pairs()[0]) {
		return false
	}
	return h.isTwoSided()
}

// yakuhaiCount counts value-tile units: each dragon meld once, and each wind
// meld once for the prevalent wind and once more for the seat wind.
func yakuhaiCount(h *Hand) int {
	n := 0
	for _, g := range h.Melds() {
		switch g.Suit {
		case Dragon:
			n++
		case Wind:
			if g.SameTile(h.prevalent) {
				n++
			}
			if g.SameTile(h.seat) {
				n++
			}
		}
	}
	return n
}
