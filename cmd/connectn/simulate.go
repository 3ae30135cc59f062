package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/cbodonnell/connectn/pkg/autoplay"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/match"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/cbodonnell/connectn/pkg/turn"
	"github.com/spf13/cobra"
)

var (
	simulateFlags boardFlags
	gamesFlag     int
	parallelFlag  int
	seedFlag      int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many games between computer players and print the results",
	Long:  "Play many games without a window. Human players are replaced by the basic computer player.",
	RunE:  simulateCommand,
}

func init() {
	simulateFlags.register(simulateCmd)
	simulateCmd.Flags().IntVar(&gamesFlag, "games", 100, "Number of games to play")
	simulateCmd.Flags().IntVar(&parallelFlag, "parallel", 4, "Games to play at the same time")
	simulateCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Random seed, 0 picks one from the clock")
}

func simulateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := simulateFlags.load(cmd)
	if err != nil {
		return err
	}
	if _, err := setLogger(cfg); err != nil {
		return err
	}
	if gamesFlag < 1 {
		return fmt.Errorf("--games must be at least 1")
	}
	specs, err := cfg.PlayerSpecs()
	if err != nil {
		return err
	}
	identities := make([]string, 0, len(specs))
	for i := range specs {
		if specs[i].Kind == players.KindHuman {
			specs[i].Kind = players.KindAI
		}
		identities = append(identities, specs[i].Color)
	}

	seed := seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Simulating %d games, %d at a time, seed %d", gamesFlag, parallelFlag, seed)

	dims := match.Dimensions{Rows: cfg.Board.Rows, Cols: cfg.Board.Cols, Streak: cfg.Board.Streak}
	quiet := log.New(os.Stderr, "", log.DefaultLoggerFlag, log.LogLevelWarn)
	newCoordinator := func(game int) (*turn.Coordinator, error) {
		ps, err := players.MakePlayers(specs, rand.New(rand.NewSource(seed+int64(game))))
		if err != nil {
			return nil, err
		}
		return turn.NewCoordinator(turn.NewCoordinatorOptions{
			NewSession:  match.NewSessionFactory(dims, ps, quiet, nil),
			Rand:        rand.New(rand.NewSource(seed - int64(game))),
			JoinTimeout: cfg.JoinTimeout.Duration,
			Logger:      log.Default().With("game", game),
		})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	tally, err := autoplay.Simulate(ctx, gamesFlag, parallelFlag, newCoordinator, autoplay.NewDriverOptions{})
	if err != nil && tally.Games == 0 {
		return fmt.Errorf("failed to simulate: %w", err)
	}
	if err != nil {
		log.Warn("Stopped after %d games: %v", tally.Games, err)
	}
	log.Info("Simulated %d games in %s", tally.Games, time.Since(start).Round(time.Millisecond))
	return tally.Report(cmd.OutOrStdout(), identities)
}
