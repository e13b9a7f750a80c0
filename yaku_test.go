package mahc

import (
	"reflect"
	"testing"
)

var (
	ronCtx   = NewRoundContextBuilder().Build()
	tsumoCtx = NewRoundContextBuilder().Tsumo(true).Build()
)

// detect runs DetectYaku on a hand with East seat and prevalent winds.
func detect(t *testing.T, groups, win string, ctx RoundContext) (HanValue, []Yaku) {
	t.Helper()
	return DetectYaku(mustHand(t, groups, win), ctx)
}

func TestDetectYaku_Ordinary(t *testing.T) {
	tests := []struct {
		name     string
		groups   string
		win      string
		ctx      RoundContext
		wantHan  HanValue
		wantYaku []Yaku
	}{
		{
			name:     "pinfu",
			groups:   "123m 456p 789s 55s 234m",
			win:      "4m",
			ctx:      ronCtx,
			wantHan:  1,
			wantYaku: []Yaku{YakuPinfu},
		},
		{
			name:     "riichi menzen tsumo pinfu",
			groups:   "123m 456p 789s 55s 234m",
			win:      "4m",
			ctx:      NewRoundContextBuilder().Tsumo(true).Riichi(SingleRiichi).Build(),
			wantHan:  3,
			wantYaku: []Yaku{YakuRiichi, YakuMenzenTsumo, YakuPinfu},
		},
		{
			name:     "double riichi ippatsu",
			groups:   "123m 456p 789s 55s 234m",
			win:      "4m",
			ctx:      NewRoundContextBuilder().Riichi(DoubleRiichi).Ippatsu(true).Build(),
			wantHan:  4,
			wantYaku: []Yaku{YakuDoubleRiichi, YakuIppatsu, YakuPinfu},
		},
		{
			name:     "open tanyao",
			groups:   "234mo 456p 678s 55s 345m",
			win:      "5m",
			ctx:      ronCtx,
			wantHan:  1,
			wantYaku: []Yaku{YakuTanyao},
		},
		{
			name:     "iipeikou",
			groups:   "123m 123m 456p 999s 55s",
			win:      "5s",
			ctx:      ronCtx,
			wantHan:  1,
			wantYaku: []Yaku{YakuIipeikou},
		},
		{
			name:     "ryanpeikou replaces iipeikou",
			groups:   "123m 123m 456p 456p 77s",
			win:      "7s",
			ctx:      ronCtx,
			wantHan:  3,
			wantYaku: []Yaku{YakuRyanpeikou},
		},
		{
			name:     "toitoi sanankou on ron",
			groups:   "111m 222p 333s 55m 444s",
			win:      "4s",
			ctx:      ronCtx,
			wantHan:  4,
			wantYaku: []Yaku{YakuToitoi, YakuSanankou},
		},
		{
			name:     "open sanshoku",
			groups:   "234mo 234p 234s 789m 55p",
			win:      "5p",
			ctx:      ronCtx,
			wantHan:  1,
			wantYaku: []Yaku{YakuSanshokuDoujun},
		},
		{
			name:     "closed ittsuu",
			groups:   "123p 456p 789p 111s 99m",
			win:      "9m",
			ctx:      ronCtx,
			wantHan:  2,
			wantYaku: []Yaku{YakuIttsuu},
		},
		{
			name:     "honitsu with yakuhai",
			groups:   "123m 456m 789m rrrd 11m",
			win:      "1m",
			ctx:      ronCtx,
			wantHan:  6,
			wantYaku: []Yaku{YakuHonitsu, YakuIttsuu, YakuYakuhai},
		},
		{
			name:     "chinitsu excludes honitsu",
			groups:   "123s 345s 567s 999s 22s",
			win:      "2s",
			ctx:      ronCtx,
			wantHan:  6,
			wantYaku: []Yaku{YakuChinitsu},
		},
		{
			name:     "junchan",
			groups:   "123m 789p 111s 789s 99m",
			win:      "9m",
			ctx:      ronCtx,
			wantHan:  3,
			wantYaku: []Yaku{YakuJunchanTaiyao},
		},
		{
			name:     "chanta",
			groups:   "123m 789p 999s NNNw 11m",
			win:      "1m",
			ctx:      ronCtx,
			wantHan:  2,
			wantYaku: []Yaku{YakuChantaiyao},
		},
		{
			name:     "shousangen",
			groups:   "wwwd gggd 234m 567p rrd",
			win:      "rd",
			ctx:      ronCtx,
			wantHan:  4,
			wantYaku: []Yaku{YakuShousangen, YakuYakuhai, YakuYakuhai},
		},
		{
			name:     "honroutou seven pairs",
			groups:   "11m 99m 11p 99s EEw wwd ggd",
			win:      "gd",
			ctx:      ronCtx,
			wantHan:  4,
			wantYaku: []Yaku{YakuHonroutou, YakuChiitoitsu},
		},
		{
			name:     "sankantsu",
			groups:   "2222mo 3333po 4444so 567s 88p",
			win:      "8p",
			ctx:      ronCtx,
			wantHan:  3,
			wantYaku: []Yaku{YakuTanyao, YakuSankantsu},
		},
		{
			name:     "sanshoku doukou",
			groups:   "222mo 222p 222s 345m 66p",
			win:      "6p",
			ctx:      ronCtx,
			wantHan:  3,
			wantYaku: []Yaku{YakuTanyao, YakuSanshokuDoukou},
		},
		{
			name:     "situational flags",
			groups:   "1111mo 456p 789s 55s 234m",
			win:      "4m",
			ctx:      NewRoundContextBuilder().Tsumo(true).Rinshan(true).Haitei(true).Build(),
			wantHan:  2,
			wantYaku: []Yaku{YakuHaitei, YakuRinshanKaihou},
		},
		{
			name:     "chankan",
			groups:   "123mo 456p 789s 55s 234m",
			win:      "4m",
			ctx:      NewRoundContextBuilder().Chankan(true).Build(),
			wantHan:  1,
			wantYaku: []Yaku{YakuChankan},
		},
		{
			name:    "no yaku",
			groups:  "123mo 456p 789s 55s 234m",
			win:     "4m",
			ctx:     ronCtx,
			wantHan: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			han, yaku := detect(t, tt.groups, tt.win, tt.ctx)
			if han != tt.wantHan {
				t.Errorf("DetectYaku(%q) han = %v, want %v (yaku %v)", tt.groups, han, tt.wantHan, yaku)
			}
			if !reflect.DeepEqual(yaku, tt.wantYaku) {
				t.Errorf("DetectYaku(%q) yaku = %v, want %v", tt.groups, yaku, tt.wantYaku)
			}
		})
	}
}

func TestDetectYaku_Yakuman(t *testing.T) {
	tests := []struct {
		name     string
		groups   string
		win      string
		seat     string
		ctx      RoundContext
		wantYaku []Yaku
	}{
		{"daisangen", "wwwd gggd rrrd 55p 123m", "1m", "Ew", ronCtx, []Yaku{YakuDaisangen}},
		{"suuankou on tsumo", "111m 222p 333s 55m 444s", "4s", "Ew", tsumoCtx, []Yaku{YakuSuuankou}},
		{"suuankou tanki", "111m 222p 333s 444s 55m", "5m", "Ew", ronCtx, []Yaku{YakuSuuankouTanki}},
		{"chinroutou", "111mo 999m 111p 999p 11s", "1s", "Ew", ronCtx, []Yaku{YakuChinroutou}},
		{"ryuuiisou", "234s 234s 666so 888s ggd", "gd", "Ew", ronCtx, []Yaku{YakuRyuuiisou}},
		{"chuuren", "111m 234m 567m 88m 999m", "9m", "Ew", ronCtx, []Yaku{YakuChuurenPoutou}},
		{"chuuren nine sided", "111m 234m 567m 999m 88m", "8m", "Ew", ronCtx, []Yaku{YakuChuurenPoutou9}},
		{"tsuuiisou with shousuushii", "EEEwo SSSw WWWw wwwd NNw", "Nw", "Ew", ronCtx, []Yaku{YakuTsuuiisou, YakuShousuushii}},
		{"daichiishin", "EEw SSw WWw NNw wwd ggd rrd", "rd", "Ew", ronCtx, []Yaku{YakuDaichiishin}},
		{"suukantsu", "1111mo 2222po 3333so 4444so 55m", "5m", "Ew", ronCtx, []Yaku{YakuSuukantsu}},
		{"daisuushii", "EEEwo SSSw WWWw NNNw 55m", "5m", "Ew", ronCtx, []Yaku{YakuDaisuushii}},
		{"kokushi", kokushiGroups, "rd", "Ew", ronCtx, []Yaku{YakuKokushiMusou}},
		{"kokushi thirteen sided", kokushiGroups, "1m", "Ew", ronCtx, []Yaku{YakuKokushiMusou13}},
		{"tenhou", "123m 456p 789s 55s 234m", "4m", "Ew", NewRoundContextBuilder().Tsumo(true).Tenhou(true).Build(), []Yaku{YakuTenhou}},
		{"chiihou", "123m 456p 789s 55s 234m", "4m", "Sw", NewRoundContextBuilder().Tsumo(true).Tenhou(true).Build(), []Yaku{YakuChiihou}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHandWinds(t, tt.groups, tt.win, tt.seat, "Ew")
			han, yaku := DetectYaku(h, tt.ctx)
			if !reflect.DeepEqual(yaku, tt.wantYaku) {
				t.Errorf("DetectYaku(%q) yaku = %v, want %v", tt.groups, yaku, tt.wantYaku)
			}
			if int(han) != len(tt.wantYaku) {
				t.Errorf("DetectYaku(%q) han = %v, want %v", tt.groups, han, len(tt.wantYaku))
			}
		})
	}
}

func TestDetectYaku_SuuankouRonIsNotYakuman(t *testing.T) {
	_, yaku := detect(t, "111m 222p 333s 55m 444s", "4s", ronCtx)
	for _, y := range yaku {
		if y.IsYakuman() {
			t.Errorf("DetectYaku: ron on the fourth triplet gave %v", y)
		}
	}
}

func TestDetectYaku_YakumanVariantsExclusive(t *testing.T) {
	pairs := [][2]Yaku{
		{YakuSuuankou, YakuSuuankouTanki},
		{YakuChuurenPoutou, YakuChuurenPoutou9},
		{YakuKokushiMusou, YakuKokushiMusou13},
		{YakuTsuuiisou, YakuDaichiishin},
		{YakuShousuushii, YakuDaisuushii},
	}
	hands := []struct {
		groups string
		win    string
		ctx    RoundContext
	}{
		{"111m 222p 333s 444s 55m", "5m", tsumoCtx},
		{"111m 222p 333s 55m 444s", "4s", tsumoCtx},
		{"111m 234m 567m 999m 88m", "8m", ronCtx},
		{"111m 234m 567m 88m 999m", "9m", tsumoCtx},
		{kokushiGroups, "1m", tsumoCtx},
		{"EEEw SSSw WWWw NNNw wwd", "wd", tsumoCtx},
		{"EEw SSw WWw NNw wwd ggd rrd", "rd", ronCtx},
	}
	for _, hand := range hands {
		_, yaku := detect(t, hand.groups, hand.win, hand.ctx)
		found := make(map[Yaku]bool)
		for _, y := range yaku {
			found[y] = true
		}
		for _, p := range pairs {
			if found[p[0]] && found[p[1]] {
				t.Errorf("DetectYaku(%q) awarded both %v and %v", hand.groups, p[0], p[1])
			}
		}
	}
}

func TestCheckPinfu(t *testing.T) {
	tests := []struct {
		name   string
		groups string
		win    string
		seat   string
		want   bool
	}{
		{"ryanmen low", "123m 456p 789s 55s 234m", "2m", "Ew", true},
		{"ryanmen high", "123m 456p 789s 55s 234m", "4m", "Ew", true},
		{"open", "123mo 456p 789s 55s 234m", "4m", "Ew", false},
		{"triplet", "123m 456p 111s 55s 234m", "4m", "Ew", false},
		{"seat wind pair", "123m 456p 789s SSw 234m", "4m", "Sw", false},
		{"dragon pair", "123m 456p 789s rrd 234m", "4m", "Ew", false},
		{"non value wind pair", "123m 456p 789s SSw 234m", "4m", "Ww", true},
		{"kanchan", "123m 456p 789s 55s 234m", "3m", "Ew", false},
		{"penchan", "456m 456p 789s 55s 123m", "3m", "Ew", false},
		{"tanki", "123m 456p 789s 234m 55s", "5s", "Ew", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHandWinds(t, tt.groups, tt.win, tt.seat, "Ew")
			if got := checkPinfu(h, ronCtx); got != tt.want {
				t.Errorf("checkPinfu(%q, win %s, seat %s) = %v, want %v", tt.groups, tt.win, tt.seat, got, tt.want)
			}
		})
	}
}

func TestYakuhaiCount(t *testing.T) {
	tests := []struct {
		name      string
		groups    string
		seat      string
		prevalent string
		want      int
	}{
		{"dragon", "wwwd 123m 456p 789s 55s", "Sw", "Ew", 1},
		{"prevalent wind", "EEEw 123m 456p 789s 55s", "Sw", "Ew", 1},
		{"seat wind", "SSSw 123m 456p 789s 55s", "Sw", "Ew", 1},
		{"double wind", "EEEw 123m 456p 789s 55s", "Ew", "Ew", 2},
		{"guest wind", "NNNw 123m 456p 789s 55s", "Sw", "Ew", 0},
		{"kan counts", "rrrrd gggd 456p 789s 55s", "Sw", "Ew", 2},
		{"pair does not count", "123m 456p 789s wwd 555s", "Sw", "Ew", 0},
	}
	for _, tt := range tests {
		h := mustHandWinds(t, tt.groups, "5s", tt.seat, tt.prevalent)
		if got := yakuhaiCount(h); got != tt.want {
			t.Errorf("yakuhaiCount(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestYakuHanTable(t *testing.T) {
	tests := []struct {
		yaku       Yaku
		closed     HanValue
		open       HanValue
		closedOnly bool
	}{
		{YakuRiichi, 1, 0, true},
		{YakuDoubleRiichi, 2, 0, true},
		{YakuPinfu, 1, 0, true},
		{YakuChiitoitsu, 2, 0, true},
		{YakuRyanpeikou, 3, 0, true},
		{YakuTanyao, 1, 1, false},
		{YakuSanshokuDoujun, 2, 1, false},
		{YakuIttsuu, 2, 1, false},
		{YakuChantaiyao, 2, 1, false},
		{YakuJunchanTaiyao, 3, 2, false},
		{YakuHonitsu, 3, 2, false},
		{YakuChinitsu, 6, 5, false},
		{YakuToitoi, 2, 2, false},
		{YakuDaisangen, 13, 13, false},
	}
	for _, tt := range tests {
		if got := tt.yaku.Han(false); got != tt.closed {
			t.Errorf("%v.Han(closed) = %v, want %v", tt.yaku, got, tt.closed)
		}
		if got := tt.yaku.Han(true); got != tt.open {
			t.Errorf("%v.Han(open) = %v, want %v", tt.yaku, got, tt.open)
		}
		if got := tt.yaku.IsClosedOnly(); got != tt.closedOnly {
			t.Errorf("%v.IsClosedOnly() = %v, want %v", tt.yaku, got, tt.closedOnly)
		}
	}
}

func TestYakuLabel(t *testing.T) {
	if got := YakuPinfu.Label(false); got != "Pinfu: 1" {
		t.Errorf("YakuPinfu.Label(false) = %q", got)
	}
	if got := YakuHonitsu.Label(true); got != "Honitsu: 2" {
		t.Errorf("YakuHonitsu.Label(true) = %q", got)
	}
	if got := YakuKokushiMusou.Label(false); got != "Kokushi Musou: Yakuman" {
		t.Errorf("YakuKokushiMusou.Label(false) = %q", got)
	}
}
