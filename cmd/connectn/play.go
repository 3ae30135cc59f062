package main

import (
	"fmt"

	"github.com/cbodonnell/connectn/client/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	playFlags boardFlags
	debugFlag bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play",
	RunE:  playCommand,
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().BoolVar(&debugFlag, "debug", false, "Show frame rates and the turn phase")
}

func playCommand(cmd *cobra.Command, args []string) error {
	cfg, err := playFlags.load(cmd)
	if err != nil {
		return err
	}
	logger, err := setLogger(cfg)
	if err != nil {
		return err
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  debugFlag,
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %v", err)
	}
	defer func() {
		if err := g.Close(); err != nil {
			logger.Warn("Failed to close game: %v", err)
		}
	}()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Connect %d", cfg.Board.Streak))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %v", err)
	}
	return nil
}
