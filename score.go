package mahc

// Score is the full breakdown of a scored hand.
type Score struct {
	payment Payment
	yaku    []Yaku
	fu      []Fu
	han     HanValue
	fuValue FuValue
	dora    uint32
	honba   HonbaCounter
	open    bool
}

// Payment returns the payment table without honba.
func (s *Score) Payment() Payment { return s.payment }

// PaymentWithHonba returns the payment table with the repeat counters
// applied, which is what the players actually exchange.
func (s *Score) PaymentWithHonba() Payment { return s.payment.WithHonba(s.honba) }

// Yaku returns the awarded yaku in detection order.
func (s *Score) Yaku() []Yaku { return append([]Yaku(nil), s.yaku...) }

// Fu returns the fu reasons.
func (s *Score) Fu() []Fu { return append([]Fu(nil), s.fu...) }

// Han returns yaku han plus dora, or the yakuman count for a yakuman hand.
func (s *Score) Han() HanValue { return s.han }

// FuValue returns the rounded fu total.
func (s *Score) FuValue() FuValue { return s.fuValue }

// Dora returns the dora count the hand was given.
func (s *Score) Dora() uint32 { return s.dora }

// Honba returns the repeat counter count the hand was scored with.
func (s *Score) Honba() HonbaCounter { return s.honba }

// IsOpen reports whether the scored hand had a called group.
func (s *Score) IsOpen() bool { return s.open }

// IsYakuman reports whether the hand scored as a yakuman.
func (s *Score) IsYakuman() bool {
	return len(s.yaku) > 0 && s.yaku[0].IsYakuman()
}

// YakuLabels renders each yaku for the hand's openness.
func (s *Score) YakuLabels() []string {
	labels := make([]string, len(s.yaku))
	for i, y := range s.yaku {
		labels[i] = y.Label(s.open)
	}
	return labels
}

// FuLabels renders each fu reason.
func (s *Score) FuLabels() []string {
	labels := make([]string, len(s.fu))
	for i, f := range s.fu {
		labels[i] = f.String()
	}
	return labels
}
