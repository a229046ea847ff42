// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/playgrounds/playground"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	noColorFlag  = "no-color"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "playctl",
		Short:         "Run the generics and protocol-oriented playgrounds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	def := playground.DefaultConfig()
	flags := root.PersistentFlags()
	flags.String(configFlag, "", "TOML config file; flags take precedence over its values")
	flags.String(logLevelFlag, def.LogLevel, "log level (verbo, debug, trace, info, warn, error, fatal, off)")
	flags.Bool(noColorFlag, def.NoColor, "disable coloured headings")

	root.AddCommand(
		newRunCmd(stderr),
		newListCmd(),
	)
	return root
}

func newRunCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:       "run [playground...]",
		Short:     "Run playgrounds in order, all of them by default",
		ValidArgs: playground.Names(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}
			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			pgs, err := cfg.Selected()
			if err != nil {
				return err
			}

			logger := newLogger(stderr, lvl)
			defer logger.Stop()

			r := playground.NewRunner(cmd.OutOrStdout(), logger, !cfg.NoColor)
			return r.Run(cmd.Context(), pgs...)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available playgrounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, pg := range playground.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d examples\n", pg.Name, len(pg.Examples)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// loadConfig builds a [playground.Config] from the config file, if any,
// overridden by explicitly set flags and then by positional arguments.
func loadConfig(flags *pflag.FlagSet, args []string) (playground.Config, error) {
	cfg := playground.DefaultConfig()

	path, err := flags.GetString(configFlag)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if cfg, err = playground.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if flags.Changed(logLevelFlag) {
		if cfg.LogLevel, err = flags.GetString(logLevelFlag); err != nil {
			return cfg, err
		}
	}
	if flags.Changed(noColorFlag) {
		if cfg.NoColor, err = flags.GetBool(noColorFlag); err != nil {
			return cfg, err
		}
	}
	if len(args) > 0 {
		cfg.Playgrounds = args
	}
	return cfg, cfg.Validate()
}

// nopCloser prevents [logging.Logger.Stop] from closing the underlying writer,
// which is typically stderr.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func newLogger(w io.Writer, lvl logging.Level) logging.Logger {
	return logging.NewLogger("playctl", logging.NewWrappedCore(
		lvl, nopCloser{w}, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			TimeKey:    "time",
			LevelKey:   "level",
		}),
	))
}
