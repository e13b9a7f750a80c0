package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"mahc/internal/config"
	"mahc/internal/log"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "mahc-gui",
	Short: "desktop riichi mahjong calculator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		log.InitLog("mahc-gui", cfg.Log.Level)

		a := app.NewWithID("mahc.calculator")
		w := a.NewWindow("mahc")
		w.SetContent(newCalculatorUI(cfg.Defaults).content())
		w.Resize(fyne.NewSize(520, 680))
		w.ShowAndRun()
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("mahc-gui: %v", err)
		os.Exit(1)
	}
}
