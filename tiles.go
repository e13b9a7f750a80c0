package mahc

import "fmt"

// suitCodes maps each suit to its notation character.
var suitCodes = map[Suit]byte{
	Manzu:  'm',
	Pinzu:  'p',
	Souzu:  's',
	Wind:   'w',
	Dragon: 'd',
}

// suitsByCode is the inverse of suitCodes.
var suitsByCode = map[byte]Suit{
	'm': Manzu,
	'p': Pinzu,
	's': Souzu,
	'w': Wind,
	'd': Dragon,
}

// Honor value codes.
const (
	East  byte = 'E'
	South byte = 'S'
	West  byte = 'W'
	North byte = 'N'

	WhiteDragon byte = 'w'
	GreenDragon byte = 'g'
	RedDragon   byte = 'r'
)

// windValues and dragonValues are in canonical order.
var (
	windValues   = []byte{East, South, West, North}
	dragonValues = []byte{WhiteDragon, GreenDragon, RedDragon}
)

// tileNames gives a readable name for every honor value.
var tileNames = map[Suit]map[byte]string{
	Wind:   {East: "East", South: "South", West: "West", North: "North"},
	Dragon: {WhiteDragon: "White", GreenDragon: "Green", RedDragon: "Red"},
}

// NumberedSuits lists the three numbered suits.
var NumberedSuits = []Suit{Manzu, Pinzu, Souzu}

// ParseSuit maps a notation character to its suit.
func ParseSuit(code byte) (Suit, error) {
	s, ok := suitsByCode[code]
	if !ok {
		return 0, ErrInvalidSuit
	}
	return s, nil
}

// validValue reports whether a value character belongs to the suit.
func validValue(v byte, suit Suit) bool {
	switch suit {
	case Wind:
		_, ok := tileNames[Wind][v]
		return ok
	case Dragon:
		_, ok := tileNames[Dragon][v]
		return ok
	}
	return v >= '1' && v <= '9'
}

// Tile identifies one of the 34 distinct tiles.
type Tile struct {
	Value byte
	Suit  Suit
}

// String renders the tile in single-tile notation.
func (t Tile) String() string {
	return string([]byte{t.Value, suitCodes[t.Suit]})
}

// Name returns a readable name, e.g. "Man 5" or "East".
func (t Tile) Name() string {
	if names, ok := tileNames[t.Suit]; ok {
		return names[t.Value]
	}
	return fmt.Sprintf("%s %c", t.Suit.String()[:3], t.Value)
}

// IsTerminalOrHonor reports whether the tile is a 1, a 9 or an honor.
func (t Tile) IsTerminalOrHonor() bool {
	return t.Suit.IsHonor() || t.Value == '1' || t.Value == '9'
}

// Tile returns the identity of the group's reference tile.
func (g TileGroup) Tile() Tile {
	return Tile{Value: g.Value, Suit: g.Suit}
}

// AllTiles returns the 34 tile identities in canonical order: manzu, pinzu,
// souzu 1-9, then winds, then dragons.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, 34)
	for _, suit := range NumberedSuits {
		for v := byte('1'); v <= '9'; v++ {
			tiles = append(tiles, Tile{Value: v, Suit: suit})
		}
	}
	for _, v := range windValues {
		tiles = append(tiles, Tile{Value: v, Suit: Wind})
	}
	for _, v := range dragonValues {
		tiles = append(tiles, Tile{Value: v, Suit: Dragon})
	}
	return tiles
}

// OrphanTiles returns the 13 terminal and honor identities.
func OrphanTiles() []Tile {
	var tiles []Tile
	for _, t := range AllTiles() {
		if t.IsTerminalOrHonor() {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// greenTiles are the tiles allowed in all green.
var greenTiles = map[Tile]bool{
	{Value: '2', Suit: Souzu}:          true,
	{Value: '3', Suit: Souzu}:          true,
	{Value: '4', Suit: Souzu}:          true,
	{Value: '6', Suit: Souzu}:          true,
	{Value: '8', Suit: Souzu}:          true,
	{Value: GreenDragon, Suit: Dragon}: true,
}
