package mahc

import "fmt"

// Hand is a complete, partitioned hand. The last group holds the winning
// tile. A Hand is immutable once built; every query returns a copy.
type Hand struct {
	groups    []TileGroup
	win       TileGroup
	seat      TileGroup
	prevalent TileGroup
	open      bool
}

// NewHand parses the group notations and reference tiles and validates the
// overall shape. The seat and prevalent winds must be wind tiles.
func NewHand(groups []string, win, seat, prevalent string) (*Hand, error) {
	parsed := make([]TileGroup, 0, len(groups))
	open := false
	for _, notation := range groups {
		g, err := parseHandGroup(notation)
		if err != nil {
			return nil, err
		}
		if g.Open {
			open = true
		}
		parsed = append(parsed, g)
	}

	if err := checkShape(parsed); err != nil {
		return nil, err
	}

	winTile, err := ParseTile(win)
	if err != nil {
		return nil, fmt.Errorf("winning tile: %w", err)
	}
	if !holdsWinTile(parsed, winTile.Tile()) {
		return nil, fmt.Errorf("%w: winning tile %s is not in %s", ErrInvalidShape, winTile, parsed[len(parsed)-1])
	}
	seatTile, err := ParseWind(seat)
	if err != nil {
		return nil, fmt.Errorf("seat wind: %w", err)
	}
	prevalentTile, err := ParseWind(prevalent)
	if err != nil {
		return nil, fmt.Errorf("prevalent wind: %w", err)
	}

	return &Hand{
		groups:    parsed,
		win:       winTile,
		seat:      seatTile,
		prevalent: prevalentTile,
		open:      open,
	}, nil
}

// parseHandGroup accepts single-tile notations next to regular groups so
// thirteen orphans can be written out; checkShape rejects them elsewhere.
func parseHandGroup(notation string) (TileGroup, error) {
	values, _, open, err := splitNotation(notation)
	if err == nil && len(values) == 1 && !open {
		return ParseTile(notation)
	}
	return ParseGroup(notation)
}

// holdsWinTile checks that the winning group contains the winning tile.
// Thirteen orphans can be completed on any of its tiles.
func holdsWinTile(groups []TileGroup, win Tile) bool {
	if len(groups) == 13 {
		for _, g := range groups {
			if g.Tile() == win {
				return true
			}
		}
		return false
	}
	return groupHolds(groups[len(groups)-1], win)
}

// groupHolds reports whether the tile is one of the group's tiles.
func groupHolds(g TileGroup, t Tile) bool {
	if g.Suit != t.Suit {
		return false
	}
	if g.Kind == Sequence {
		return t.Value >= g.Value && t.Value <= g.Value+2
	}
	return t.Value == g.Value
}

// filter returns the groups of the given kind, in hand order.
func (h *Hand) filter(kind GroupKind) []TileGroup {
	var out []TileGroup
	for _, g := range h.groups {
		if g.Kind == kind {
			out = append(out, g)
		}
	}
	return out
}

// Groups returns every group in hand order.
func (h *Hand) Groups() []TileGroup {
	return append([]TileGroup(nil), h.groups...)
}

// Sequences returns the runs of three, in hand order.
func (h *Hand) Sequences() []TileGroup { return h.filter(Sequence) }

// Triplets returns the groups of three identical tiles.
func (h *Hand) Triplets() []TileGroup { return h.filter(Triplet) }

// Kans returns the groups of four identical tiles.
func (h *Hand) Kans() []TileGroup { return h.filter(Kan) }

// Pairs returns the groups of two identical tiles.
func (h *Hand) Pairs() []TileGroup { return h.filter(Pair) }

// Singles returns the lone tiles of a thirteen orphans hand.
func (h *Hand) Singles() []TileGroup { return h.filter(None) }

// Melds returns the triplets and kans, in hand order.
func (h *Hand) Melds() []TileGroup {
	var out []TileGroup
	for _, g := range h.groups {
		if g.IsMeld() {
			out = append(out, g)
		}
	}
	return out
}

// WinningGroup returns the group completed by the winning tile.
func (h *Hand) WinningGroup() TileGroup {
	return h.groups[len(h.groups)-1]
}

// WinTile returns the tile the hand won on.
func (h *Hand) WinTile() TileGroup { return h.win }

// SeatWind returns the winner's seat wind.
func (h *Hand) SeatWind() TileGroup { return h.seat }

// PrevalentWind returns the round wind.
func (h *Hand) PrevalentWind() TileGroup { return h.prevalent }

// IsOpen reports whether any group was called.
func (h *Hand) IsOpen() bool {
	return h.open
}

// IsSevenPairs reports whether the hand is partitioned into seven pairs.
func (h *Hand) IsSevenPairs() bool {
	return len(h.Pairs()) == 7
}

// IsThirteenOrphans reports whether the hand is the twelve singles plus a
// pair shape.
func (h *Hand) IsThirteenOrphans() bool {
	return len(h.Singles()) == 12
}

// IsStandard reports whether the hand is four sets and a pair.
func (h *Hand) IsStandard() bool {
	return len(h.Pairs()) == 1 && len(h.Sequences())+len(h.Melds()) == 4
}

// IsValueTile reports whether the tile is a dragon, the seat wind or the
// prevalent wind.
func (h *Hand) IsValueTile(g TileGroup) bool {
	return g.Suit == Dragon || g.SameTile(h.seat) || g.SameTile(h.prevalent)
}

// Tiles expands every group into its individual tiles.
func (h *Hand) Tiles() []Tile {
	var tiles []Tile
	for _, g := range h.groups {
		if g.Kind == Sequence {
			for i := byte(0); i < 3; i++ {
				tiles = append(tiles, Tile{Value: g.Value + i, Suit: g.Suit})
			}
			continue
		}
		for i := 0; i < g.Kind.size(); i++ {
			tiles = append(tiles, g.Tile())
		}
	}
	return tiles
}

// TileCounts counts each tile identity across the whole hand.
func (h *Hand) TileCounts() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range h.Tiles() {
		counts[t]++
	}
	return counts
}

// closedMeldCount counts concealed triplets and kans. On ron the winning
// triplet was completed from a discard and does not count.
func (h *Hand) closedMeldCount(tsumo bool) int {
	count := 0
	for _, g := range h.Melds() {
		if !g.Open {
			count++
		}
	}
	if !tsumo && h.WinningGroup().Kind == Triplet && !h.WinningGroup().Open {
		count--
	}
	return count
}
