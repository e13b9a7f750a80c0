package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mahc/internal/config"
	"mahc/internal/log"
)

// calculatorUI holds the widgets of both tabs.
type calculatorUI struct {
	tiles     *widget.Entry
	win       *widget.Entry
	seat      *widget.Entry
	prevalent *widget.Entry
	dora      *widget.Entry
	honba     *widget.Entry
	riichi    *widget.Select
	tsumo     *widget.Check
	ippatsu   *widget.Check
	haitei    *widget.Check
	rinshan   *widget.Check
	chankan   *widget.Check
	tenhou    *widget.Check
	score     *widget.Button
	handOut   *widget.Label

	han       *widget.Entry
	fu        *widget.Entry
	calcHonba *widget.Entry
	calculate *widget.Button
	calcOut   *widget.Label
}

func newCalculatorUI(defaults config.DefaultsConf) *calculatorUI {
	ui := &calculatorUI{
		tiles:     widget.NewEntry(),
		win:       widget.NewEntry(),
		seat:      widget.NewEntry(),
		prevalent: widget.NewEntry(),
		dora:      widget.NewEntry(),
		honba:     widget.NewEntry(),
		riichi:    widget.NewSelect(riichiOptions, nil),
		tsumo:     widget.NewCheck("Tsumo", nil),
		ippatsu:   widget.NewCheck("Ippatsu", nil),
		haitei:    widget.NewCheck("Haitei", nil),
		rinshan:   widget.NewCheck("Rinshan", nil),
		chankan:   widget.NewCheck("Chankan", nil),
		tenhou:    widget.NewCheck("Tenhou", nil),
		handOut:   monoLabel(),

		han:       widget.NewEntry(),
		fu:        widget.NewEntry(),
		calcHonba: widget.NewEntry(),
		calcOut:   monoLabel(),
	}
	ui.tiles.SetPlaceHolder("123m 456p 789s 55s 234m")
	ui.win.SetPlaceHolder("4m")
	ui.seat.SetText(defaults.Seat)
	ui.prevalent.SetText(defaults.Prevalent)
	ui.riichi.SetSelected(riichiNone)

	ui.score = widget.NewButton("Score", ui.onScore)
	ui.calculate = widget.NewButton("Calculate", ui.onCalculate)
	return ui
}

func monoLabel() *widget.Label {
	l := widget.NewLabel("")
	l.TextStyle = fyne.TextStyle{Monospace: true}
	return l
}

func (ui *calculatorUI) handForm() handForm {
	return handForm{
		Tiles:     ui.tiles.Text,
		Win:       ui.win.Text,
		Seat:      ui.seat.Text,
		Prevalent: ui.prevalent.Text,
		Dora:      ui.dora.Text,
		Honba:     ui.honba.Text,
		Riichi:    ui.riichi.Selected,
		Tsumo:     ui.tsumo.Checked,
		Ippatsu:   ui.ippatsu.Checked,
		Haitei:    ui.haitei.Checked,
		Rinshan:   ui.rinshan.Checked,
		Chankan:   ui.chankan.Checked,
		Tenhou:    ui.tenhou.Checked,
	}
}

func (ui *calculatorUI) onScore() {
	f := ui.handForm()
	log.Debug("score %q win %q", f.Tiles, f.Win)
	ui.handOut.SetText(scoreText(f))
}

func (ui *calculatorUI) onCalculate() {
	ui.calcOut.SetText(calcText(calcForm{
		Han:   ui.han.Text,
		Fu:    ui.fu.Text,
		Honba: ui.calcHonba.Text,
	}))
}

// content lays both tabs out.
func (ui *calculatorUI) content() fyne.CanvasObject {
	handFields := widget.NewForm(
		widget.NewFormItem("Tiles", ui.tiles),
		widget.NewFormItem("Win", ui.win),
		widget.NewFormItem("Seat", ui.seat),
		widget.NewFormItem("Prevalent", ui.prevalent),
		widget.NewFormItem("Dora", ui.dora),
		widget.NewFormItem("Honba", ui.honba),
		widget.NewFormItem("Riichi", ui.riichi),
	)
	checks := container.NewGridWithColumns(3, ui.tsumo, ui.ippatsu, ui.haitei, ui.rinshan, ui.chankan, ui.tenhou)
	hand := container.NewVBox(handFields, checks, ui.score, ui.handOut)

	calcFields := widget.NewForm(
		widget.NewFormItem("Han", ui.han),
		widget.NewFormItem("Fu", ui.fu),
		widget.NewFormItem("Honba", ui.calcHonba),
	)
	manual := container.NewVBox(calcFields, ui.calculate, ui.calcOut)

	return container.NewAppTabs(
		container.NewTabItem("Hand", container.NewVScroll(hand)),
		container.NewTabItem("Manual", manual),
	)
}
