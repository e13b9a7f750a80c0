package mahc

import "errors"

// Parse and shape errors.
var (
	ErrInvalidGroup = errors.New("Invalid group!")
	ErrInvalidSuit  = errors.New("Invalid suit!")
	ErrInvalidShape = errors.New("Invalid hand shape!")
)

// Scoring errors.
var (
	ErrNoHan  = errors.New("No han provided!")
	ErrNoFu   = errors.New("No fu provided!")
	ErrNoYaku = errors.New("No Yaku!")
)

// Round context contradictions. The CLI checks these before building a hand,
// GetHandScore checks them again for contexts built directly.
var (
	ErrChankanTsumo              = errors.New("Cannot tsumo and chankan at the same time!")
	ErrRinshanWithoutTsumo       = errors.New("Rinshan requires tsumo!")
	ErrRinshanIppatsu            = errors.New("Cannot rinshan and ippatsu at the same time!")
	ErrDuplicateRiichi           = errors.New("Cannot riichi and double riichi at the same time!")
	ErrIppatsuWithoutRiichi      = errors.New("Ippatsu requires riichi or double riichi!")
	ErrDoubleRiichiHaiteiIppatsu = errors.New("Cannot double riichi, haitei and ippatsu at the same time!")
	ErrDoubleRiichiHaiteiChankan = errors.New("Cannot double riichi, haitei and chankan at the same time!")
	ErrTenhouWithoutTsumo        = errors.New("Tenhou/chiihou requires tsumo!")
	ErrRinshanKanWithoutKan      = errors.New("Rinshan requires a kan in the hand!")
	ErrRiichiOpenHand            = errors.New("Cannot riichi with an open hand!")
)

// Request errors raised by callers that assemble a Request from loose input.
var (
	ErrNoHandTiles = errors.New("No hand tiles given!")
	ErrNoWinTile   = errors.New("No winning tile given!")
)
