package main

import (
	"errors"
	"strings"
	"testing"

	"mahc"
)

func TestSplitTiles(t *testing.T) {
	got := splitTiles(" 123m, 456p\t789s  55s,234m ")
	want := []string{"123m", "456p", "789s", "55s", "234m"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitTiles = %q, want %q", got, want)
	}
}

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest(handForm{
		Tiles:     "123m 456p 789s 55s 234m",
		Win:       " 4m ",
		Seat:      "Sw",
		Prevalent: "Ew",
		Dora:      "2",
		Honba:     "1",
		Riichi:    riichiDouble,
		Tsumo:     true,
	})
	if err != nil {
		t.Fatalf("buildRequest unexpected error: %v", err)
	}
	if len(req.Tiles) != 5 || req.Win != "4m" || req.Dora != 2 || req.Honba != 1 {
		t.Errorf("buildRequest = %+v", req)
	}
	if req.Context.Riichi() != mahc.DoubleRiichi || !req.Context.Tsumo() {
		t.Errorf("buildRequest context = %+v", req.Context)
	}
}

func TestBuildRequest_Errors(t *testing.T) {
	base := handForm{Tiles: "123m 456p 789s 55s 234m", Win: "4m"}
	tests := []struct {
		name   string
		modify func(f *handForm)
		want   error
	}{
		{"no tiles", func(f *handForm) { f.Tiles = "  " }, mahc.ErrNoHandTiles},
		{"no win", func(f *handForm) { f.Win = "" }, mahc.ErrNoWinTile},
		{"chankan tsumo", func(f *handForm) { f.Tsumo, f.Chankan = true, true }, mahc.ErrChankanTsumo},
		{"ippatsu alone", func(f *handForm) { f.Ippatsu = true }, mahc.ErrIppatsuWithoutRiichi},
		{"bad riichi", func(f *handForm) { f.Riichi = "Triple" }, errUnknownRiichi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			tt.modify(&f)
			if _, err := buildRequest(f); !errors.Is(err, tt.want) {
				t.Errorf("buildRequest error = %v, want %v", err, tt.want)
			}
		})
	}

	f := base
	f.Dora = "two"
	if _, err := buildRequest(f); err == nil {
		t.Errorf("buildRequest(dora %q) expected error", f.Dora)
	}
}

func TestScoreText(t *testing.T) {
	got := scoreText(handForm{Tiles: "123m 456p 789s 55s 234m", Win: "4m", Seat: "Sw", Prevalent: "Ew"})
	if !strings.HasPrefix(got, "1 Han/ 30 Fu\n") || !strings.Contains(got, "Pinfu: 1") {
		t.Errorf("scoreText = %q", got)
	}
	if got := scoreText(handForm{Win: "4m"}); got != "Error: No hand tiles given!" {
		t.Errorf("scoreText(no tiles) = %q", got)
	}
}

func TestCalcText(t *testing.T) {
	got := calcText(calcForm{Han: "4", Fu: "30", Honba: "3"})
	want := "4 Han/ 30 Fu/ 3 Honba\nDealer: 12500 (4200)\nnon-dealer: 8600 (2300/4200)"
	if got != want {
		t.Errorf("calcText = %q, want %q", got, want)
	}
	if got := calcText(calcForm{Fu: "30"}); got != "Error: No han provided!" {
		t.Errorf("calcText(no han) = %q", got)
	}
}
