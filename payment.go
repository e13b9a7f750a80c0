package mahc

import "math"

// HonbaCounter is the number of repeat counters on the table.
type HonbaCounter uint32

// Multipliers applied to the base points.
const (
	DealerRonMultiplier                 = 6
	DealerTsumoMultiplier               = 2
	NonDealerRonMultiplier              = 4
	NonDealerTsumoToNonDealerMultiplier = 1
	NonDealerTsumoToDealerMultiplier    = 2
)

// Honba surcharges per counter.
const (
	honbaRon   = 300
	honbaTsumo = 100
)

// Payment is the full payment table for a win. Tsumo figures are per
// paying player.
type Payment struct {
	dealerRon                 uint32
	dealerTsumo               uint32
	nonDealerRon              uint32
	nonDealerTsumoToNonDealer uint32
	nonDealerTsumoToDealer    uint32
}

// roundUp100 rounds up to the next multiple of 100.
func roundUp100(v uint32) uint32 {
	return (v + 99) / 100 * 100
}

// NewPayment expands base points into the five payment figures, each
// rounded up on its own.
func NewPayment(base uint32) Payment {
	return Payment{
		dealerRon:                 roundUp100(base * DealerRonMultiplier),
		dealerTsumo:               roundUp100(base * DealerTsumoMultiplier),
		nonDealerRon:              roundUp100(base * NonDealerRonMultiplier),
		nonDealerTsumoToNonDealer: roundUp100(base * NonDealerTsumoToNonDealerMultiplier),
		nonDealerTsumoToDealer:    roundUp100(base * NonDealerTsumoToDealerMultiplier),
	}
}

// DealerRon is what the discarder pays a dealer.
func (p Payment) DealerRon() uint32 { return p.dealerRon }

// DealerTsumo is what each player pays a dealer who self-draws.
func (p Payment) DealerTsumo() uint32 { return p.dealerTsumo }

// NonDealerRon is what the discarder pays a non-dealer.
func (p Payment) NonDealerRon() uint32 { return p.nonDealerRon }

// NonDealerTsumoToNonDealer is what each other non-dealer pays on a
// non-dealer self-draw.
func (p Payment) NonDealerTsumoToNonDealer() uint32 { return p.nonDealerTsumoToNonDealer }

// NonDealerTsumoToDealer is the dealer's share on a non-dealer self-draw.
func (p Payment) NonDealerTsumoToDealer() uint32 { return p.nonDealerTsumoToDealer }

// WithHonba returns a copy with the repeat counter surcharge added. Figures
// that would overflow stop at math.MaxUint32.
func (p Payment) WithHonba(h HonbaCounter) Payment {
	return Payment{
		dealerRon:                 addHonba(p.dealerRon, honbaRon, h),
		dealerTsumo:               addHonba(p.dealerTsumo, honbaTsumo, h),
		nonDealerRon:              addHonba(p.nonDealerRon, honbaRon, h),
		nonDealerTsumoToNonDealer: addHonba(p.nonDealerTsumoToNonDealer, honbaTsumo, h),
		nonDealerTsumoToDealer:    addHonba(p.nonDealerTsumoToDealer, honbaTsumo, h),
	}
}

func addHonba(v, per uint32, h HonbaCounter) uint32 {
	sum := uint64(v) + uint64(per)*uint64(h)
	if sum > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(sum)
}
