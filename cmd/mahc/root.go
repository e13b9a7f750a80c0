package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mahc/internal/batch"
	"mahc/internal/config"
	"mahc/internal/log"
)

// errReported means the failure was already written to stderr.
var errReported = errors.New("reported")

type app struct {
	opts       options
	configFile string
	logLevel   string

	loader *config.Loader
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "mahc [tiles...]",
		Short: "riichi mahjong calculator tool",
		Long: `Scores a riichi mahjong hand, or computes the payment for a han and fu
pair with --manual, or replays a file of invocations with --file.`,
		Example: `  mahc --tiles 123m 456p 789s 55s 234m -w 4m -s Sw
  mahc -m 4 30 -b 3
  mahc -f hands.txt`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.opts.tiles = append(a.opts.tiles, args...)
			applyConfig(cmd.Flags(), &a.opts, a.cfg)
			return a.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	bindFlags(cmd.Flags(), &a.opts)
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./mahc.yaml or $HOME/.mahc.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newServeCmd(a))
	return cmd
}

// setup loads the configuration and starts logging before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	loader, err := config.NewLoader(a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err := loader.Config()
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	a.loader, a.cfg = loader, cfg

	log.InitLog("mahc", cfg.Log.Level)
	if f := loader.File(); f != "" {
		log.Debug("config file %s", f)
	}
	return nil
}

func (a *app) run(ctx context.Context, stdout, stderr io.Writer) error {
	if a.opts.file != "" {
		return a.runFile(ctx, a.opts.file, stdout, stderr)
	}
	log.Debug("evaluating %s", describe(a.opts))
	out, err := evaluate(a.opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errReported
	}
	fmt.Fprintln(stdout, out)
	return nil
}

// runFile replays a batch file. Failed lines are reported and skipped.
func (a *app) runFile(ctx context.Context, path string, stdout, stderr io.Writer) error {
	results, err := batch.Run(ctx, path, a.cfg.Batch.Workers, a.evalLine)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errReported
	}
	for _, r := range results {
		if r.Err != nil {
			log.Debug("%s:%d: %v", r.File, r.Line, r.Err)
			fmt.Fprintf(stderr, "Error: %v\n", r.Err)
			continue
		}
		fmt.Fprintln(stdout, r.Output)
	}
	return nil
}

// evalLine parses one batch line with the same flags as the command line.
func (a *app) evalLine(_ context.Context, args []string) (string, error) {
	var o options
	fs := pflag.NewFlagSet("mahc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bindFlags(fs, &o)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	o.tiles = append(o.tiles, fs.Args()...)
	applyConfig(fs, &o, a.cfg)
	return evaluate(o)
}
