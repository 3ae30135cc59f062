package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/connectn/client/input"
	"github.com/cbodonnell/connectn/client/layout"
	"github.com/cbodonnell/connectn/client/objects"
	"github.com/cbodonnell/connectn/pkg/config"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/cbodonnell/connectn/pkg/turn"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// RevealStep is how long the hovering piece rests on each column of an AI reveal.
	RevealStep = 250 * time.Millisecond
	// FooterHeight is reserved below the board for the buttons.
	FooterHeight = 60

	zIndexBoard  = 10
	zIndexPieces = 20
	zIndexHover  = 30
	zIndexStars  = 40
	zIndexLabel  = 50

	piecePrefix = "piece-"
	starsID     = "win-stars"
)

// GameScene presents one coordinator: it shows prompts, plays reveals and drop
// animations and reports them back so the match can continue.
type GameScene struct {
	*BaseScene

	root        *objects.SortedZIndexObject
	ui          *ebitenui.UI
	coordinator *turn.Coordinator
	layout      *layout.Layout
	logger      *log.Logger

	names  map[string]string
	colors map[string]color.Color

	label    *objects.LabelObject
	hover    *objects.PieceObject
	hoverCol int
	pointer  input.PointerTracker

	reveal   *revealState
	dropping *objects.PieceObject
	pieces   int

	onFailed  func(err error) error
	onQuit    func() error
	destroyed bool
}

type revealState struct {
	reveal  turn.Reveal
	elapsed time.Duration
}

type NewGameSceneOptions struct {
	Coordinator *turn.Coordinator
	Players     []players.Player
	Rows        int
	Cols        int
	Width       int
	Height      int
	Logger      *log.Logger
	// OnFailed is called once when the session ends in PhaseFailed.
	OnFailed func(err error) error
	// OnQuit is called when the player leaves the game.
	OnQuit func() error
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	if opts.Coordinator == nil {
		return nil, fmt.Errorf("coordinator is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	names := make(map[string]string, len(opts.Players))
	colors := make(map[string]color.Color, len(opts.Players))
	for _, p := range opts.Players {
		clr, err := config.ParseColor(p.Color())
		if err != nil {
			return nil, fmt.Errorf("failed to parse color of %s: %v", p.Name(), err)
		}
		names[p.Color()] = p.Name()
		colors[p.Color()] = clr
	}

	root := objects.NewSortedZIndexObject("game-root")
	return &GameScene{
		BaseScene:   NewBaseScene(root),
		root:        root,
		coordinator: opts.Coordinator,
		layout:      layout.New(opts.Width, opts.Height-FooterHeight, opts.Rows, opts.Cols),
		logger:      logger,
		names:       names,
		colors:      colors,
		onFailed:    opts.OnFailed,
		onQuit:      opts.OnQuit,
	}, nil
}

func (s *GameScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}

	l := s.layout
	s.label = objects.NewLabelObject("turn-label", objects.NewLabelObjectOptions{
		X:      l.OriginX + l.Width()/2,
		Y:      layout.LabelHeight / 2,
		ZIndex: zIndexLabel,
	})
	s.hover = objects.NewPieceObject("hover", objects.NewPieceObjectOptions{
		Radius: l.Radius(),
		ZIndex: zIndexHover,
	})
	s.hover.Hide()

	for _, obj := range []objects.GameObject{
		objects.NewBoardObject("board", l, zIndexBoard),
		s.label,
		s.hover,
	} {
		if err := s.root.AddChild(obj.GetID(), obj); err != nil {
			return fmt.Errorf("failed to add %s: %v", obj.GetID(), err)
		}
	}

	s.renderUI()
	return nil
}

func (s *GameScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	buttons.AddChild(newButton("Reset", neutralButtonImage, func() {
		if err := s.reset(); err != nil {
			s.logger.Error("Failed to reset: %v", err)
		}
	}))
	buttons.AddChild(newButton("Quit", negativeButtonImage, func() {
		if err := s.onQuit(); err != nil {
			s.logger.Error("Failed to quit: %v", err)
		}
	}))
	rootContainer.AddChild(buttons)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameScene) Destroy() error {
	s.destroyed = true
	if err := s.coordinator.Shutdown(); err != nil {
		s.logger.Warn("Failed to shut down coordinator: %v", err)
	}
	return s.BaseScene.Destroy()
}

func (s *GameScene) reset() error {
	s.logger.Info("Resetting game")
	if err := s.coordinator.Reset(); err != nil {
		return err
	}
	return s.drainEvents()
}

func (s *GameScene) Update() error {
	s.ui.Update()
	// A button may have left the scene.
	if s.destroyed {
		return nil
	}

	if input.IsNegativeJustPressed() {
		return s.onQuit()
	}
	if input.IsResetJustPressed() {
		// A failed reset leaves the coordinator in PhaseFailed, handled below.
		if err := s.reset(); err != nil {
			s.logger.Error("Failed to reset: %v", err)
		}
	}

	phase := s.coordinator.Tick()
	if err := s.drainEvents(); err != nil {
		return err
	}

	switch phase {
	case turn.PhaseAwaitingHumanChoice:
		s.updateHumanChoice()
	case turn.PhaseAwaitingAIReveal:
		s.updateReveal()
	case turn.PhaseAnimating:
		if s.dropping != nil && s.dropping.Landed() {
			s.dropping = nil
			if err := s.coordinator.AnimationDone(); err != nil {
				s.logger.Warn("Failed to finish animation: %v", err)
			}
		}
	case turn.PhaseFailed:
		_, _, payload := s.coordinator.PollState()
		err, _ := payload.(error)
		return s.onFailed(err)
	}

	return s.BaseScene.Update()
}

func (s *GameScene) drainEvents() error {
	events, err := s.coordinator.Events().ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read events: %v", err)
	}
	for _, event := range events {
		if err := s.handleEvent(event); err != nil {
			return fmt.Errorf("failed to handle %s event: %v", event.Phase, err)
		}
	}
	return nil
}

func (s *GameScene) handleEvent(event turn.Event) error {
	s.logger.Trace("Event %s for %q in session %s", event.Phase, event.Identity, event.SessionID)
	switch event.Phase {
	case turn.PhaseResetting:
		return s.clearBoard()
	case turn.PhaseAwaitingHumanChoice:
		s.showTurn(event.Identity)
		prompt := event.Payload.(turn.Prompt)
		if len(prompt.Legal) > 0 && !containsCol(prompt.Legal, s.hoverCol) {
			s.hoverCol = prompt.Legal[0]
		}
		s.placeHover(s.hoverCol)
	case turn.PhaseAwaitingAIReveal:
		s.showTurn(event.Identity)
		s.reveal = &revealState{reveal: event.Payload.(turn.Reveal)}
		s.placeHover(s.reveal.reveal.Fakes[0])
	case turn.PhaseAnimating:
		return s.dropPiece(event.Payload.(turn.Move))
	case turn.PhaseComplete:
		return s.showOutcome(event.Payload.(turn.Outcome))
	}
	return nil
}

func (s *GameScene) showTurn(identity string) {
	s.label.SetText(fmt.Sprintf("%s's turn", s.nameOf(identity)), s.colorOf(identity))
	s.hover.SetColor(s.colorOf(identity))
	s.hover.Show()
}

func (s *GameScene) placeHover(col int) {
	x, _ := s.layout.CellCenter(0, col)
	s.hover.MoveTo(x, s.layout.HoverY())
}

func (s *GameScene) updateHumanChoice() {
	_, _, payload := s.coordinator.PollState()
	prompt, ok := payload.(turn.Prompt)
	if !ok {
		return
	}

	x, y := input.PointerPosition()
	if s.pointer.Moved() {
		if col, ok := s.layout.ColumnAt(x, y); ok {
			s.hoverCol = col
		}
	}
	if input.IsLeftJustPressed() {
		s.hoverCol = max(s.hoverCol-1, 0)
	}
	if input.IsRightJustPressed() {
		s.hoverCol = min(s.hoverCol+1, s.layout.Cols-1)
	}
	s.placeHover(s.hoverCol)

	if !input.IsPositiveJustPressed() {
		return
	}
	// Clicks in the footer belong to the buttons.
	if input.IsClickJustPressed() && y >= s.layout.OriginY+s.layout.Height() {
		return
	}
	if !containsCol(prompt.Legal, s.hoverCol) {
		s.logger.Debug("Column %d is full", s.hoverCol)
		return
	}
	if err := s.coordinator.Submit(s.hoverCol); err != nil {
		var illegal *turn.IllegalMoveError
		if errors.As(err, &illegal) || errors.Is(err, turn.ErrInvalidTransition) {
			s.logger.Debug("Ignored choice: %v", err)
			return
		}
		s.logger.Error("Failed to submit choice: %v", err)
	}
}

func (s *GameScene) updateReveal() {
	if s.reveal == nil {
		return
	}
	s.reveal.elapsed += time.Second / time.Duration(ebiten.TPS())
	fakes := s.reveal.reveal.Fakes
	step := int(s.reveal.elapsed / RevealStep)
	if step < len(fakes) {
		s.placeHover(fakes[step])
		return
	}

	col := s.reveal.reveal.Move.Col
	s.reveal = nil
	if err := s.coordinator.Submit(col); err != nil {
		s.logger.Error("Failed to finish reveal: %v", err)
	}
}

func (s *GameScene) dropPiece(move turn.Move) error {
	s.hover.Hide()
	s.reveal = nil

	l := s.layout
	x, toY := l.CellCenter(move.Row, move.Col)
	_, bottomY := l.CellCenter(0, move.Col)
	piece := objects.NewPieceObject(fmt.Sprintf("%s%d", piecePrefix, s.pieces), objects.NewPieceObjectOptions{
		X:      x,
		Y:      l.HoverY(),
		Radius: l.Radius(),
		Color:  s.colorOf(move.Identity),
		ZIndex: zIndexPieces,
	})
	piece.DropTo(toY, bottomY-l.HoverY())
	if err := s.root.AddChild(piece.GetID(), piece); err != nil {
		return err
	}
	s.pieces++
	s.dropping = piece
	return nil
}

func (s *GameScene) showOutcome(outcome turn.Outcome) error {
	s.hover.Hide()
	switch {
	case outcome.Winner != "":
		s.label.SetText(fmt.Sprintf("%s wins!", s.nameOf(outcome.Winner)), s.colorOf(outcome.Winner))
		stars := objects.NewWinObject(starsID, s.layout, outcome.Run, zIndexStars)
		return s.root.AddChild(starsID, stars)
	case outcome.Draw:
		s.label.SetText("It's a draw", color.White)
	default:
		s.label.SetText("Game over", color.White)
	}
	return nil
}

func (s *GameScene) clearBoard() error {
	s.hover.Hide()
	s.reveal = nil
	s.dropping = nil
	s.pieces = 0
	s.label.SetText("", nil)
	if err := s.root.RemoveChildren(piecePrefix); err != nil {
		return err
	}
	return s.root.RemoveChildren(starsID)
}

func (s *GameScene) nameOf(identity string) string {
	if name, ok := s.names[identity]; ok {
		return name
	}
	return identity
}

func (s *GameScene) colorOf(identity string) color.Color {
	if clr, ok := s.colors[identity]; ok {
		return clr
	}
	return color.White
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}

func containsCol(cols []int, col int) bool {
	for _, c := range cols {
		if c == col {
			return true
		}
	}
	return false
}
