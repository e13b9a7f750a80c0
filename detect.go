package mahc

// yakuCheck pairs a predicate with the yaku it awards.
type yakuCheck struct {
	check checkFunc
	yaku  Yaku
}

// yakumanChecks run first. Variant pairs are written so that at most one of
// each pair can hold.
var yakumanChecks = []yakuCheck{
	{checkDaisangen, YakuDaisangen},
	{checkSuuankou, YakuSuuankou},
	{checkSuuankouTanki, YakuSuuankouTanki},
	{checkChinroutou, YakuChinroutou},
	{checkRyuuiisou, YakuRyuuiisou},
	{checkChuuren, YakuChuurenPoutou},
	{checkChuuren9, YakuChuurenPoutou9},
	{checkTsuuiisou, YakuTsuuiisou},
	{checkDaichiishin, YakuDaichiishin},
	{checkSuukantsu, YakuSuukantsu},
	{checkShousuushii, YakuShousuushii},
	{checkDaisuushii, YakuDaisuushii},
	{checkKokushi, YakuKokushiMusou},
	{checkKokushi13, YakuKokushiMusou13},
	{checkTenhou, YakuTenhou},
	{checkChiihou, YakuChiihou},
}

// ordinaryChecks run in listing order after the riichi declaration.
var ordinaryChecks = []yakuCheck{
	{checkIppatsu, YakuIppatsu},
	{checkHaitei, YakuHaitei},
	{checkRinshan, YakuRinshanKaihou},
	{checkChankan, YakuChankan},
	{checkTanyao, YakuTanyao},
	{checkIipeikou, YakuIipeikou},
	{checkRyanpeikou, YakuRyanpeikou},
	{checkToitoi, YakuToitoi},
	{checkSanshokuDoujun, YakuSanshokuDoujun},
	{checkSanankou, YakuSanankou},
	{checkHonitsu, YakuHonitsu},
	{checkShousangen, YakuShousangen},
	{checkJunchan, YakuJunchanTaiyao},
	{checkHonroutou, YakuHonroutou},
	{checkSankantsu, YakuSankantsu},
	{checkIttsuu, YakuIttsuu},
	{checkChanta, YakuChantaiyao},
	{checkChiitoitsu, YakuChiitoitsu},
	{checkMenzenTsumo, YakuMenzenTsumo},
	{checkPinfu, YakuPinfu},
	{checkSanshokuDoukou, YakuSanshokuDoukou},
	{checkChinitsu, YakuChinitsu},
}

func runChecks(checks []yakuCheck, h *Hand, ctx RoundContext) []Yaku {
	var out []Yaku
	for _, c := range checks {
		if c.yaku.IsClosedOnly() && h.IsOpen() {
			continue
		}
		if c.check(h, ctx) {
			out = append(out, c.yaku)
		}
	}
	return out
}

// DetectYaku evaluates the hand. If any yakuman holds, only the yakuman are
// returned and the han is their count. Otherwise the han is the sum of the
// ordinary yaku values for the hand's openness.
func DetectYaku(h *Hand, ctx RoundContext) (HanValue, []Yaku) {
	if yakuman := runChecks(yakumanChecks, h, ctx); len(yakuman) > 0 {
		return HanValue(len(yakuman)), yakuman
	}

	var yaku []Yaku
	switch ctx.Riichi() {
	case SingleRiichi:
		yaku = append(yaku, YakuRiichi)
	case DoubleRiichi:
		yaku = append(yaku, YakuDoubleRiichi)
	}
	if h.IsOpen() {
		yaku = yaku[:0]
	}

	yaku = append(yaku, runChecks(ordinaryChecks, h, ctx)...)
	for i := yakuhaiCount(h); i > 0; i-- {
		yaku = append(yaku, YakuYakuhai)
	}
	return TotalHan(yaku, h.IsOpen()), yaku
}
