package main

import (
	"os"

	"github.com/cbodonnell/connectn/pkg/config"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/spf13/cobra"
)

// boardFlags are shared by every command that builds a game.
type boardFlags struct {
	configPath string
	rows       int
	cols       int
	streak     int
	players    []string
	noReveal   bool
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to a TOML config file")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "Number of rows (overrides the config)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "Number of columns (overrides the config)")
	cmd.Flags().IntVar(&f.streak, "streak", 0, "Pieces in a row needed to win (overrides the config)")
	cmd.Flags().StringArrayVar(&f.players, "player", nil, "A player as color[:kind], kind is human, ai or better-ai; repeat for each player in turn order")
	cmd.Flags().BoolVar(&f.noReveal, "no-reveal", false, "Drop computer moves without the hovering reveal")
}

// load reads the config file, if any, and applies the flags the user set.
func (f *boardFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := config.Overrides{
		Players:  f.players,
		NoReveal: f.noReveal,
	}
	if cmd.Flags().Changed("rows") {
		overrides.Rows = &f.rows
	}
	if cmd.Flags().Changed("cols") {
		overrides.Cols = &f.cols
	}
	if cmd.Flags().Changed("streak") {
		overrides.Streak = &f.streak
	}
	if cmd.Flags().Changed("log-level") {
		overrides.LogLevel = logLevel
	}
	if err := overrides.Apply(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setLogger replaces the default logger with one at the configured level.
func setLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, level)
	log.SetDefaultLogger(logger)
	return logger, nil
}
