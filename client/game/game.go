package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/connectn/client/input"
	"github.com/cbodonnell/connectn/client/objects"
	"github.com/cbodonnell/connectn/client/scenes"
	"github.com/cbodonnell/connectn/client/ui"
	"github.com/cbodonnell/connectn/pkg/config"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/match"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/cbodonnell/connectn/pkg/turn"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug shows frame rates and the coordinator phase.
	debug bool
	// cfg is the validated configuration the game was started with.
	cfg *config.Config
	// specs are the players as last chosen on the selection scene.
	specs []players.Spec
	// rng seeds AI players and reveal fake-outs.
	rng *rand.Rand
	// coordinator drives the current match, nil outside GameModePlay.
	coordinator *turn.Coordinator
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene  scenes.Scene
	logger *log.Logger
}

type GameMode int

const (
	GameModeSelect GameMode = iota
	GameModePlay
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeSelect:
		return "Select"
	case GameModePlay:
		return "Play"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug  bool
	Config *config.Config
	Logger *log.Logger
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	specs, err := opts.Config.PlayerSpecs()
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %v", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		debug:  opts.Debug,
		cfg:    opts.Config,
		specs:  specs,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	if err := g.loadSelect(); err != nil {
		return nil, fmt.Errorf("failed to load player selection scene: %v", err)
	}
	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}
	return nil
}

func (g *Game) loadSelect() error {
	selection, err := scenes.NewPlayerSelectScene(scenes.PlayerSelectSceneOpts{
		Specs:   g.specs,
		Board:   g.cfg.Board,
		OnStart: g.start,
	})
	if err != nil {
		return fmt.Errorf("failed to create player selection scene: %v", err)
	}
	if err := g.SetScene(selection); err != nil {
		return fmt.Errorf("failed to set player selection scene: %v", err)
	}
	g.coordinator = nil
	g.mode = GameModeSelect
	return nil
}

func (g *Game) start(specs []players.Spec) error {
	g.specs = specs
	ps, err := players.MakePlayers(specs, g.rng)
	if err != nil {
		return &ui.ActionableError{Message: "Invalid players", Err: err}
	}

	dims := match.Dimensions{Rows: g.cfg.Board.Rows, Cols: g.cfg.Board.Cols, Streak: g.cfg.Board.Streak}
	coordinator, err := turn.NewCoordinator(turn.NewCoordinatorOptions{
		NewSession:  match.NewSessionFactory(dims, ps, g.logger, nil),
		Reveal:      g.cfg.Reveal.Enabled,
		FakeOuts:    g.cfg.Reveal.FakeOuts,
		Rand:        rand.New(rand.NewSource(g.rng.Int63())),
		JoinTimeout: g.cfg.JoinTimeout.Duration,
		Logger:      g.logger,
	})
	if err != nil {
		return &ui.ActionableError{Message: "Could not start the game", Err: err}
	}

	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Coordinator: coordinator,
		Players:     ps,
		Rows:        dims.Rows,
		Cols:        dims.Cols,
		Width:       g.cfg.Window.Width,
		Height:      g.cfg.Window.Height,
		Logger:      g.logger,
		OnFailed:    g.loadError,
		OnQuit:      g.loadSelect,
	})
	if err != nil {
		if err := coordinator.Shutdown(); err != nil {
			g.logger.Warn("Failed to shut down coordinator: %v", err)
		}
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.coordinator = coordinator
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadError(cause error) error {
	g.logger.Error("Game failed: %v", cause)
	errorScene, err := scenes.NewErrorScene("The game stopped", cause)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.coordinator = nil
	g.mode = GameModeError
	return nil
}

func (g *Game) Update() error {
	if g.mode == GameModeError && input.IsPositiveJustPressed() {
		if err := g.loadSelect(); err != nil {
			return fmt.Errorf("failed to load player selection scene: %v", err)
		}
		return nil
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(objects.BackgroundColor)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.coordinator == nil {
		return
	}
	phase, identity, _ := g.coordinator.PollState()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Phase: %s %s", phase, identity))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Session: %s", g.coordinator.SessionID()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close tears down the current scene, stopping any running match.
func (g *Game) Close() error {
	if g.scene == nil {
		return nil
	}
	err := g.scene.Destroy()
	g.scene = nil
	return err
}
