package mahc

import (
	"reflect"
	"testing"
)

func TestCalculateFu(t *testing.T) {
	tests := []struct {
		name    string
		groups  string
		win     string
		tsumo   bool
		wantFu  FuValue
		wantFus []Fu
	}{
		{
			name:    "closed ron ryanmen",
			groups:  "123m 456p 789s 55s 234m",
			win:     "4m",
			wantFu:  30,
			wantFus: []Fu{FuBasePoints, FuClosedRon},
		},
		{
			name:    "closed tsumo ryanmen",
			groups:  "123m 456p 789s 55s 234m",
			win:     "4m",
			tsumo:   true,
			wantFu:  30,
			wantFus: []Fu{FuBasePoints, FuTsumo},
		},
		{
			name:    "open ron all sequences",
			groups:  "234mo 456p 678s 55s 345m",
			win:     "5m",
			wantFu:  20,
			wantFus: []Fu{FuBasePoints},
		},
		{
			name:    "edge wait",
			groups:  "456p 789s 55s 111m 123m",
			win:     "3m",
			wantFu:  40,
			wantFus: []Fu{FuBasePoints, FuClosedRon, FuNonSimpleClosedTriplet, FuSingleWait},
		},
		{
			name:    "closed wait",
			groups:  "456p 789s 55s 234p 345m",
			win:     "4m",
			wantFu:  40,
			wantFus: []Fu{FuBasePoints, FuClosedRon, FuSingleWait},
		},
		{
			name:    "pair wait on value pair",
			groups:  "123m 456p 789s 234s wwd",
			win:     "wd",
			wantFu:  40,
			wantFus: []Fu{FuBasePoints, FuClosedRon, FuToitsu, FuSingleWait},
		},
		{
			name:    "ron on triplet counts it as called",
			groups:  "123m 456p 789s 55s 222m",
			win:     "2m",
			wantFu:  40,
			wantFus: []Fu{FuBasePoints, FuClosedRon, FuSimpleOpenTriplet},
		},
		{
			name:    "tsumo on triplet keeps it concealed",
			groups:  "123m 456p 789s 55s 222m",
			win:     "2m",
			tsumo:   true,
			wantFu:  30,
			wantFus: []Fu{FuBasePoints, FuTsumo, FuSimpleClosedTriplet},
		},
		{
			name:   "kans",
			groups: "1111m 2222po EEEEwo 789s 55m",
			win:    "5m",
			wantFu: 80,
			wantFus: []Fu{
				FuBasePoints,
				FuNonSimpleClosedKan,
				FuSimpleOpenKan,
				FuNonSimpleOpenKan,
				FuSingleWait,
			},
		},
		{
			name:    "seven pairs",
			groups:  "11m 22m 33p 44p 55s 66s 77s",
			win:     "7s",
			wantFu:  25,
			wantFus: []Fu{FuBasePointsChitoi},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.groups, tt.win)
			fu, fus := CalculateFu(h, tt.tsumo)
			if fu != tt.wantFu {
				t.Errorf("CalculateFu(%q) = %v, want %v (reasons %v)", tt.groups, fu, tt.wantFu, fus)
			}
			if !reflect.DeepEqual(fus, tt.wantFus) {
				t.Errorf("CalculateFu(%q) reasons = %v, want %v", tt.groups, fus, tt.wantFus)
			}
			if fu != 25 && fu%10 != 0 {
				t.Errorf("CalculateFu(%q) = %v, not a multiple of 10", tt.groups, fu)
			}
		})
	}
}

func TestHandFu_Pinfu(t *testing.T) {
	h := mustHand(t, "123m 456p 789s 55s 234m", "4m")
	pinfu := []Yaku{YakuPinfu}

	ron := NewRoundContextBuilder().Build()
	if fu, fus := HandFu(h, ron, pinfu); fu != 30 || !reflect.DeepEqual(fus, []Fu{FuBasePoints, FuClosedRon}) {
		t.Errorf("HandFu(pinfu ron) = %v %v, want 30", fu, fus)
	}

	tsumo := NewRoundContextBuilder().Tsumo(true).Build()
	if fu, fus := HandFu(h, tsumo, pinfu); fu != 20 || !reflect.DeepEqual(fus, []Fu{FuBasePoints}) {
		t.Errorf("HandFu(pinfu tsumo) = %v %v, want 20", fu, fus)
	}
}

func TestTotalFu(t *testing.T) {
	tests := []struct {
		fus  []Fu
		want FuValue
	}{
		{[]Fu{FuBasePoints}, 20},
		{[]Fu{FuBasePoints, FuTsumo}, 30},
		{[]Fu{FuBasePoints, FuClosedRon, FuSingleWait}, 40},
		{[]Fu{FuBasePointsChitoi}, 25},
		{[]Fu{FuBasePoints, FuNonSimpleClosedKan, FuNonSimpleClosedKan, FuNonSimpleClosedKan}, 120},
	}
	for _, tt := range tests {
		if got := TotalFu(tt.fus); got != tt.want {
			t.Errorf("TotalFu(%v) = %v, want %v", tt.fus, got, tt.want)
		}
	}
}

func TestFuString(t *testing.T) {
	tests := map[Fu]string{
		FuBasePoints:             "BasePoints: 20",
		FuBasePointsChitoi:       "BasePoints: 25",
		FuClosedRon:              "ClosedRon: 10",
		FuTsumo:                  "Tsumo: 2",
		FuNonSimpleClosedTriplet: "NonSimpleClosedTriplet: 8",
		FuSimpleClosedTriplet:    "ClosedTriplet: 4",
		FuSimpleOpenTriplet:      "OpenTriplet: 2",
		FuSimpleClosedKan:        "ClosedKan: 16",
		FuSimpleOpenKan:          "OpenKan: 8",
		FuToitsu:                 "Toitsu: 2",
		FuSingleWait:             "SingleWait: 2",
	}
	for f, want := range tests {
		if got := f.String(); got != want {
			t.Errorf("Fu(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}
