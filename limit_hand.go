package mahc

import "fmt"

// LimitHand is a capped scoring tier.
type LimitHand int

const (
	Mangan LimitHand = iota
	Haneman
	Baiman
	Sanbaiman
	KazoeYakuman
)

var limitBasePoints = [...]uint32{
	Mangan:       2000,
	Haneman:      3000,
	Baiman:       4000,
	Sanbaiman:    6000,
	KazoeYakuman: 8000,
}

// String returns the tier name.
func (l LimitHand) String() string {
	switch l {
	case Mangan:
		return "Mangan"
	case Haneman:
		return "Haneman"
	case Baiman:
		return "Baiman"
	case Sanbaiman:
		return "Sanbaiman"
	case KazoeYakuman:
		return "Kazoe Yakuman"
	}
	return fmt.Sprintf("LimitHand(%d)", int(l))
}

// BasePoints returns the fixed base of the tier.
func (l LimitHand) BasePoints() uint32 {
	return limitBasePoints[l]
}

// Payment expands the tier into a payment table.
func (l LimitHand) Payment() Payment {
	return NewPayment(l.BasePoints())
}

// IsLimitHand reports whether han and fu reach a capped tier.
func IsLimitHand(han HanValue, fu FuValue) bool {
	switch {
	case han >= 5:
		return true
	case han == 4 && fu >= 40:
		return true
	case han == 3 && fu >= 70:
		return true
	}
	return false
}

// GetLimitHand returns the tier for han and fu, or false when the score is
// computed from the base formula.
func GetLimitHand(han HanValue, fu FuValue) (LimitHand, bool) {
	if !IsLimitHand(han, fu) {
		return 0, false
	}
	switch {
	case han <= 5:
		return Mangan, true
	case han <= 7:
		return Haneman, true
	case han <= 10:
		return Baiman, true
	case han <= 12:
		return Sanbaiman, true
	}
	return KazoeYakuman, true
}
