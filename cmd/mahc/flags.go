package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"mahc"
	"mahc/internal/config"
	"mahc/internal/render"
)

var (
	errManualArgs  = errors.New("manual mode takes exactly two values: han and fu")
	errManualRange = errors.New("manual han and fu must be at most 4294967295")
)

// options is one invocation, from the command line or a batch file line.
type options struct {
	tiles        []string
	win          string
	dora         uint32
	seat         string
	prev         string
	tsumo        bool
	riichi       bool
	doubleRiichi bool
	ippatsu      bool
	haitei       bool
	rinshan      bool
	chankan      bool
	tenhou       bool
	honba        uint32
	manual       []uint
	file         string
	json         bool
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringSliceVar(&o.tiles, "tiles", nil, "hand tiles, e.g. 123m,456p or as trailing arguments")
	fs.StringVarP(&o.win, "win", "w", "", "winning tile")
	fs.Uint32VarP(&o.dora, "dora", "d", 0, "han from dora")
	fs.StringVarP(&o.seat, "seat", "s", "Ew", "seat wind")
	fs.StringVarP(&o.prev, "prev", "p", "Ew", "prevalent wind")
	fs.BoolVarP(&o.tsumo, "tsumo", "t", false, "won by self-draw")
	fs.BoolVarP(&o.riichi, "riichi", "r", false, "riichi declared")
	fs.BoolVar(&o.doubleRiichi, "doubleriichi", false, "double riichi declared")
	fs.BoolVarP(&o.ippatsu, "ippatsu", "i", false, "won within one go-around of riichi")
	fs.BoolVar(&o.haitei, "haitei", false, "won on the last tile")
	fs.BoolVar(&o.rinshan, "rinshan", false, "won on a kan replacement tile")
	fs.BoolVar(&o.chankan, "chankan", false, "won by robbing a kan")
	fs.BoolVar(&o.tenhou, "tenhou", false, "won on the first draw")
	fs.Uint32VarP(&o.honba, "ba", "b", 0, "honba count")
	fs.UintSliceVarP(&o.manual, "manual", "m", nil, "calculator mode: han,fu")
	fs.StringVarP(&o.file, "file", "f", "", "replay a file, one invocation per line")
	fs.BoolVar(&o.json, "json", false, "print results as json")
}

// applyConfig fills in values the flags did not set explicitly.
func applyConfig(fs *pflag.FlagSet, o *options, cfg *config.Config) {
	if !fs.Changed("seat") {
		o.seat = cfg.Defaults.Seat
	}
	if !fs.Changed("prev") {
		o.prev = cfg.Defaults.Prevalent
	}
	if !fs.Changed("json") {
		o.json = cfg.Output.JSON
	}
}

// evaluate runs the calculator or the hand scorer. File mode is handled by
// the caller.
func evaluate(o options) (string, error) {
	if o.manual != nil {
		return calculate(o)
	}
	return scoreHand(o)
}

func calculate(o options) (string, error) {
	if len(o.manual) != 2 {
		return "", errManualArgs
	}
	if o.manual[0] > math.MaxUint32 || o.manual[1] > math.MaxUint32 {
		return "", errManualRange
	}
	han, fu := mahc.HanValue(o.manual[0]), mahc.FuValue(o.manual[1])
	honba := mahc.HonbaCounter(o.honba)

	p, err := mahc.Calculate(han, fu)
	if err != nil {
		return "", err
	}
	if o.json {
		return render.CalcJSON(p, honba, han, fu)
	}
	return render.CalcText(p, honba, han, fu), nil
}

func scoreHand(o options) (string, error) {
	if len(o.tiles) == 0 {
		return "", mahc.ErrNoHandTiles
	}
	if o.win == "" {
		return "", mahc.ErrNoWinTile
	}
	ctx, err := mahc.ContextFlags{
		Tsumo:        o.tsumo,
		Riichi:       o.riichi,
		DoubleRiichi: o.doubleRiichi,
		Ippatsu:      o.ippatsu,
		Haitei:       o.haitei,
		Rinshan:      o.rinshan,
		Chankan:      o.chankan,
		Tenhou:       o.tenhou,
	}.Context()
	if err != nil {
		return "", err
	}

	score, err := mahc.Request{
		Tiles:     o.tiles,
		Win:       o.win,
		Seat:      o.seat,
		Prevalent: o.prev,
		Dora:      o.dora,
		Honba:     mahc.HonbaCounter(o.honba),
		Context:   ctx,
	}.Score()
	if err != nil {
		return "", err
	}
	if o.json {
		return render.HandJSON(score)
	}
	return render.HandText(score), nil
}

func describe(o options) string {
	if o.manual != nil {
		return fmt.Sprintf("manual %v", o.manual)
	}
	return fmt.Sprintf("hand %v win %s", o.tiles, o.win)
}
