package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mahc"
	"mahc/internal/render"
)

// Riichi choices offered by the hand tab.
const (
	riichiNone   = "None"
	riichiSingle = "Riichi"
	riichiDouble = "Double Riichi"
)

var riichiOptions = []string{riichiNone, riichiSingle, riichiDouble}

var errUnknownRiichi = errors.New("unknown riichi choice")

// handForm is the hand tab as plain values.
type handForm struct {
	Tiles     string
	Win       string
	Seat      string
	Prevalent string
	Dora      string
	Honba     string
	Riichi    string
	Tsumo     bool
	Ippatsu   bool
	Haitei    bool
	Rinshan   bool
	Chankan   bool
	Tenhou    bool
}

// calcForm is the manual tab as plain values.
type calcForm struct {
	Han   string
	Fu    string
	Honba string
}

// splitTiles accepts groups separated by spaces or commas.
func splitTiles(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

// parseCount reads an optional non-negative integer field.
func parseCount(name, s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a count", name, s)
	}
	return uint32(n), nil
}

func buildRequest(f handForm) (mahc.Request, error) {
	tiles := splitTiles(f.Tiles)
	if len(tiles) == 0 {
		return mahc.Request{}, mahc.ErrNoHandTiles
	}
	win := strings.TrimSpace(f.Win)
	if win == "" {
		return mahc.Request{}, mahc.ErrNoWinTile
	}
	dora, err := parseCount("dora", f.Dora)
	if err != nil {
		return mahc.Request{}, err
	}
	honba, err := parseCount("honba", f.Honba)
	if err != nil {
		return mahc.Request{}, err
	}

	flags := mahc.ContextFlags{
		Tsumo:   f.Tsumo,
		Ippatsu: f.Ippatsu,
		Haitei:  f.Haitei,
		Rinshan: f.Rinshan,
		Chankan: f.Chankan,
		Tenhou:  f.Tenhou,
	}
	switch f.Riichi {
	case "", riichiNone:
	case riichiSingle:
		flags.Riichi = true
	case riichiDouble:
		flags.DoubleRiichi = true
	default:
		return mahc.Request{}, fmt.Errorf("%w: %q", errUnknownRiichi, f.Riichi)
	}
	ctx, err := flags.Context()
	if err != nil {
		return mahc.Request{}, err
	}

	return mahc.Request{
		Tiles:     tiles,
		Win:       win,
		Seat:      strings.TrimSpace(f.Seat),
		Prevalent: strings.TrimSpace(f.Prevalent),
		Dora:      dora,
		Honba:     mahc.HonbaCounter(honba),
		Context:   ctx,
	}, nil
}

// scoreText is what the hand tab shows for a form.
func scoreText(f handForm) string {
	req, err := buildRequest(f)
	if err != nil {
		return "Error: " + err.Error()
	}
	s, err := req.Score()
	if err != nil {
		return "Error: " + err.Error()
	}
	return strings.TrimPrefix(render.HandText(s), "\n")
}

// calcText is what the manual tab shows for a form.
func calcText(f calcForm) string {
	han, err := parseCount("han", f.Han)
	if err != nil {
		return "Error: " + err.Error()
	}
	fu, err := parseCount("fu", f.Fu)
	if err != nil {
		return "Error: " + err.Error()
	}
	honba, err := parseCount("honba", f.Honba)
	if err != nil {
		return "Error: " + err.Error()
	}
	p, err := mahc.Calculate(mahc.HanValue(han), mahc.FuValue(fu))
	if err != nil {
		return "Error: " + err.Error()
	}
	return strings.TrimPrefix(render.CalcText(p, mahc.HonbaCounter(honba), mahc.HanValue(han), mahc.FuValue(fu)), "\n")
}
