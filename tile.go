package mahc

import (
	"fmt"
	"strings"
)

// Suit is the suit of a tile group.
type Suit int

const (
	Manzu Suit = iota
	Pinzu
	Souzu
	Wind
	Dragon
)

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Manzu:
		return "Manzu"
	case Pinzu:
		return "Pinzu"
	case Souzu:
		return "Souzu"
	case Wind:
		return "Wind"
	case Dragon:
		return "Dragon"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// IsHonor reports whether s is the wind or dragon suit.
func (s Suit) IsHonor() bool {
	return s == Wind || s == Dragon
}

// GroupKind is the structural kind of a tile group.
type GroupKind int

const (
	None     GroupKind = iota // single reference tile, not part of a meld
	Sequence                  // chi
	Triplet                   // pon / ankou
	Kan                       // open or concealed quad
	Pair
)

// String returns the kind name.
func (k GroupKind) String() string {
	switch k {
	case None:
		return "None"
	case Sequence:
		return "Sequence"
	case Triplet:
		return "Triplet"
	case Kan:
		return "Kan"
	case Pair:
		return "Pair"
	}
	return fmt.Sprintf("GroupKind(%d)", int(k))
}

// OpenMarker is the trailing character that marks a called group.
const OpenMarker = 'o'

// validSequences lists every run of three that counts as a sequence.
var validSequences = map[string]bool{
	"123": true, "234": true, "345": true, "456": true,
	"567": true, "678": true, "789": true,
}

// TileGroup is one parsed group from the hand notation. Value holds the
// lowest value for a sequence and the repeated value otherwise.
type TileGroup struct {
	Value    byte
	Suit     Suit
	Open     bool
	Kind     GroupKind
	Terminal bool
}

// IsHonor reports whether the group is made of winds or dragons.
func (g TileGroup) IsHonor() bool {
	return g.Suit.IsHonor()
}

// IsNonSimple reports whether the group touches a terminal or is an honor.
func (g TileGroup) IsNonSimple() bool {
	return g.Terminal || g.IsHonor()
}

// IsMeld reports whether the group is a triplet or a kan.
func (g TileGroup) IsMeld() bool {
	return g.Kind == Triplet || g.Kind == Kan
}

// SameTile reports whether two groups share value and suit, ignoring kind
// and openness.
func (g TileGroup) SameTile(o TileGroup) bool {
	return g.Value == o.Value && g.Suit == o.Suit
}

// Number returns the numeric face value of a numbered group, or 0 for honors.
func (g TileGroup) Number() int {
	if g.Value >= '1' && g.Value <= '9' {
		return int(g.Value - '0')
	}
	return 0
}

// String renders the group back into notation.
func (g TileGroup) String() string {
	var b strings.Builder
	switch g.Kind {
	case Sequence:
		for i := byte(0); i < 3; i++ {
			b.WriteByte(g.Value + i)
		}
	default:
		b.WriteString(strings.Repeat(string(g.Value), g.Kind.size()))
	}
	b.WriteByte(suitCodes[g.Suit])
	if g.Open {
		b.WriteByte(OpenMarker)
	}
	return b.String()
}

// size is the number of tiles a group of this kind holds.
func (k GroupKind) size() int {
	switch k {
	case Sequence, Triplet:
		return 3
	case Kan:
		return 4
	case Pair:
		return 2
	}
	return 1
}

// splitNotation separates a notation into its value characters, suit code
// and open flag.
func splitNotation(notation string) (values string, suit byte, open bool, err error) {
	if len(notation) < 2 {
		return "", 0, false, fmt.Errorf("%w: %q", ErrInvalidGroup, notation)
	}
	if notation[len(notation)-1] == OpenMarker && len(notation) >= 3 {
		open = true
		notation = notation[:len(notation)-1]
	}
	return notation[:len(notation)-1], notation[len(notation)-1], open, nil
}

// ParseGroup parses a group notation such as "123m", "EEEw" or "555po".
func ParseGroup(notation string) (TileGroup, error) {
	values, code, open, err := splitNotation(notation)
	if err != nil {
		return TileGroup{}, err
	}
	suit, err := ParseSuit(code)
	if err != nil {
		return TileGroup{}, fmt.Errorf("%w: %q", err, notation)
	}
	for i := 0; i < len(values); i++ {
		if !validValue(values[i], suit) {
			return TileGroup{}, fmt.Errorf("%w: %q", ErrInvalidGroup, notation)
		}
	}

	kind, err := groupKind(values, suit)
	if err != nil {
		return TileGroup{}, fmt.Errorf("%w: %q", err, notation)
	}

	g := TileGroup{
		Value: values[0],
		Suit:  suit,
		Open:  open,
		Kind:  kind,
	}
	g.Terminal = isTerminalValue(g.Value, kind)
	return g, nil
}

// ParseTile parses a single reference tile such as "5m" or "Ew". The result
// has kind None and is never open.
func ParseTile(notation string) (TileGroup, error) {
	if len(notation) != 2 {
		return TileGroup{}, fmt.Errorf("%w: %q", ErrInvalidGroup, notation)
	}
	suit, err := ParseSuit(notation[1])
	if err != nil {
		return TileGroup{}, fmt.Errorf("%w: %q", err, notation)
	}
	if !validValue(notation[0], suit) {
		return TileGroup{}, fmt.Errorf("%w: %q", ErrInvalidGroup, notation)
	}
	return TileGroup{
		Value:    notation[0],
		Suit:     suit,
		Kind:     None,
		Terminal: isTerminalValue(notation[0], None),
	}, nil
}

// ParseWind parses a seat or prevalent wind tile.
func ParseWind(notation string) (TileGroup, error) {
	t, err := ParseTile(notation)
	if err != nil {
		return TileGroup{}, err
	}
	if t.Suit != Wind {
		return TileGroup{}, fmt.Errorf("%w: %q is not a wind", ErrInvalidSuit, notation)
	}
	return t, nil
}

// groupKind infers the kind purely from length and value pattern.
func groupKind(values string, suit Suit) (GroupKind, error) {
	switch len(values) {
	case 2:
		if values[0] != values[1] {
			return None, ErrInvalidGroup
		}
		return Pair, nil
	case 3:
		if values[0] == values[1] && values[1] == values[2] {
			return Triplet, nil
		}
		if validSequences[values] && !suit.IsHonor() {
			return Sequence, nil
		}
		return None, ErrInvalidGroup
	case 4:
		if strings.Count(values, values[:1]) != 4 {
			return None, ErrInvalidGroup
		}
		return Kan, nil
	}
	return None, ErrInvalidGroup
}

// isTerminalValue applies the terminal rule: sequences touching 1 or 9
// (starting at 1 or 7), and everything else valued 1 or 9.
func isTerminalValue(v byte, kind GroupKind) bool {
	if kind == Sequence {
		return v == '1' || v == '7'
	}
	return v == '1' || v == '9'
}
