package mahc

import "fmt"

// HanValue is a han count. Under yakuman it counts yakuman units instead.
type HanValue uint32

// Yaku is a scoring pattern.
type Yaku int

const (
	// Ordinary yaku.
	YakuRiichi Yaku = iota
	YakuDoubleRiichi
	YakuIppatsu
	YakuHaitei
	YakuRinshanKaihou
	YakuChankan
	YakuTanyao
	YakuIipeikou
	YakuRyanpeikou
	YakuToitoi
	YakuSanshokuDoujun
	YakuSanankou
	YakuHonitsu
	YakuShousangen
	YakuJunchanTaiyao
	YakuHonroutou
	YakuSankantsu
	YakuIttsuu
	YakuChantaiyao
	YakuChiitoitsu
	YakuMenzenTsumo
	YakuPinfu
	YakuSanshokuDoukou
	YakuChinitsu
	YakuYakuhai

	// Yakuman.
	YakuDaisangen
	YakuSuuankou
	YakuSuuankouTanki
	YakuChinroutou
	YakuRyuuiisou
	YakuChuurenPoutou
	YakuChuurenPoutou9
	YakuTsuuiisou
	YakuDaichiishin
	YakuSuukantsu
	YakuShousuushii
	YakuDaisuushii
	YakuKokushiMusou
	YakuKokushiMusou13
	YakuTenhou
	YakuChiihou
)

// yakumanHan is the nominal han of a yakuman, used only for display.
const yakumanHan HanValue = 13

// yakuInfo holds the static properties of a yaku. An open value of zero
// means the yaku is closed only.
type yakuInfo struct {
	name    string
	closed  HanValue
	open    HanValue
	yakuman bool
}

var yakuTable = map[Yaku]yakuInfo{
	YakuRiichi:         {name: "Riichi", closed: 1},
	YakuDoubleRiichi:   {name: "Double Riichi", closed: 2},
	YakuIppatsu:        {name: "Ippatsu", closed: 1},
	YakuHaitei:         {name: "Haitei", closed: 1, open: 1},
	YakuRinshanKaihou:  {name: "Rinshan Kaihou", closed: 1, open: 1},
	YakuChankan:        {name: "Chankan", closed: 1, open: 1},
	YakuTanyao:         {name: "Tanyao", closed: 1, open: 1},
	YakuIipeikou:       {name: "Iipeikou", closed: 1},
	YakuRyanpeikou:     {name: "Ryanpeikou", closed: 3},
	YakuToitoi:         {name: "Toitoi", closed: 2, open: 2},
	YakuSanshokuDoujun: {name: "Sanshoku Doujun", closed: 2, open: 1},
	YakuSanankou:       {name: "Sanankou", closed: 2, open: 2},
	YakuHonitsu:        {name: "Honitsu", closed: 3, open: 2},
	YakuShousangen:     {name: "Shousangen", closed: 2, open: 2},
	YakuJunchanTaiyao:  {name: "Junchan Taiyao", closed: 3, open: 2},
	YakuHonroutou:      {name: "Honroutou", closed: 2, open: 2},
	YakuSankantsu:      {name: "Sankantsu", closed: 2, open: 2},
	YakuIttsuu:         {name: "Ittsuu", closed: 2, open: 1},
	YakuChantaiyao:     {name: "Chantaiyao", closed: 2, open: 1},
	YakuChiitoitsu:     {name: "Chiitoitsu", closed: 2},
	YakuMenzenTsumo:    {name: "Menzen Tsumo", closed: 1},
	YakuPinfu:          {name: "Pinfu", closed: 1},
	YakuSanshokuDoukou: {name: "Sanshoku Doukou", closed: 2, open: 2},
	YakuChinitsu:       {name: "Chinitsu", closed: 6, open: 5},
	YakuYakuhai:        {name: "Yakuhai", closed: 1, open: 1},

	YakuDaisangen:      {name: "Daisangen", yakuman: true},
	YakuSuuankou:       {name: "Suuankou", yakuman: true},
	YakuSuuankouTanki:  {name: "Suuankou Tanki", yakuman: true},
	YakuChinroutou:     {name: "Chinroutou", yakuman: true},
	YakuRyuuiisou:      {name: "Ryuuiisou", yakuman: true},
	YakuChuurenPoutou:  {name: "Chuuren Poutou", yakuman: true},
	YakuChuurenPoutou9: {name: "Chuuren Poutou 9-sided wait", yakuman: true},
	YakuTsuuiisou:      {name: "Tsuuiisou", yakuman: true},
	YakuDaichiishin:    {name: "Daichiishin", yakuman: true},
	YakuSuukantsu:      {name: "Suukantsu", yakuman: true},
	YakuShousuushii:    {name: "Shousuushii", yakuman: true},
	YakuDaisuushii:     {name: "Daisuushii", yakuman: true},
	YakuKokushiMusou:   {name: "Kokushi Musou", yakuman: true},
	YakuKokushiMusou13: {name: "Kokushi Musou 13-sided wait", yakuman: true},
	YakuTenhou:         {name: "Tenhou", yakuman: true},
	YakuChiihou:        {name: "Chiihou", yakuman: true},
}

// Name returns the display name of the yaku.
func (y Yaku) Name() string {
	if info, ok := yakuTable[y]; ok {
		return info.name
	}
	return fmt.Sprintf("Yaku(%d)", int(y))
}

// String returns the display name.
func (y Yaku) String() string {
	return y.Name()
}

// IsYakuman reports whether the yaku is a limit pattern.
func (y Yaku) IsYakuman() bool {
	return yakuTable[y].yakuman
}

// IsClosedOnly reports whether the yaku requires a concealed hand.
func (y Yaku) IsClosedOnly() bool {
	info := yakuTable[y]
	return !info.yakuman && info.open == 0
}

// Han returns the han the yaku is worth for a closed or open hand. Yakuman
// report the nominal 13.
func (y Yaku) Han(open bool) HanValue {
	info := yakuTable[y]
	switch {
	case info.yakuman:
		return yakumanHan
	case open:
		return info.open
	}
	return info.closed
}

// Label renders the yaku for result listings, e.g. "Pinfu: 1" or
// "Daisangen: Yakuman".
func (y Yaku) Label(open bool) string {
	if y.IsYakuman() {
		return y.Name() + ": Yakuman"
	}
	return fmt.Sprintf("%s: %d", y.Name(), y.Han(open))
}

// YakumanCount counts the yakuman units in a list.
func YakumanCount(yaku []Yaku) int {
	n := 0
	for _, y := range yaku {
		if y.IsYakuman() {
			n++
		}
	}
	return n
}

// TotalHan sums the han of a yaku list.
func TotalHan(yaku []Yaku, open bool) HanValue {
	var han HanValue
	for _, y := range yaku {
		han += y.Han(open)
	}
	return han
}
